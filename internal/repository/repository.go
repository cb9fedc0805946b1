package repository

import (
	"errors"

	"employee_web/internal/storage"
)

// ErrNotFound 表示查詢的資料不存在
var ErrNotFound = errors.New("record not found")

type Repositories struct {
	Account  AccountRepository
	Employee EmployeeRepository
}

func NewRepositories(db *storage.DB) *Repositories {
	return &Repositories{
		Account:  NewAccountRepository(db),
		Employee: NewEmployeeRepository(db),
	}
}
