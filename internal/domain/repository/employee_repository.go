package repository

import "github.com/epicontrol/epi-api/internal/domain/entity"

// EmployeeRepository define o porto de persistência para Employee (DIP).
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByRegistration(registration string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	List(limit, offset int) ([]*entity.Employee, error)
	Delete(id string) error
}
