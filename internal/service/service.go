package service

import (
	"employee_web/internal/repository"
)

type Services struct {
	Auth     *AuthService
	Employee *EmployeeService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Auth:     NewAuthService(repos.Account),
		Employee: NewEmployeeService(repos.Employee),
	}
}
