package repository

import (
	"errors"

	"gorm.io/gorm"

	"employee_web/internal/models"
	"employee_web/internal/storage"
)

type EmployeeRepository interface {
	Create(employee *models.Employee) error
	FindAll() ([]models.Employee, error)
	FindByID(id uint) (*models.Employee, error)
	FindByEmail(email string) (*models.Employee, error)
	Update(employee *models.Employee) error
	Delete(employee *models.Employee) error
}

type employeeRepository struct {
	db *storage.DB
}

func NewEmployeeRepository(db *storage.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepository) FindAll() ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) FindByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindByEmail(email string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.Where("email = ?", email).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// Delete 永久刪除員工資料，不使用 gorm 的軟刪除
func (r *employeeRepository) Delete(employee *models.Employee) error {
	return r.db.Unscoped().Delete(employee).Error
}
