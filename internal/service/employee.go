package service

import (
	"errors"

	"employee_web/internal/models"
	"employee_web/internal/repository"
)

type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// List 取得所有員工資料，順序不做保證
func (s *EmployeeService) List() ([]models.Employee, error) {
	return s.employeeRepo.FindAll()
}

// Get 依 ID 取得單筆員工資料，不存在時回傳 repository.ErrNotFound
func (s *EmployeeService) Get(id uint) (*models.Employee, error) {
	return s.employeeRepo.FindByID(id)
}

// Add 新增員工
// Email 已存在時回傳警告訊息，不會寫入資料
func (s *EmployeeService) Add(name, email, department string) (Result, error) {
	_, err := s.employeeRepo.FindByEmail(email)
	if err == nil {
		return Result{Status: StatusWarning, Message: "⚠️ 此 Email 已有員工使用"}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return Result{}, err
	}

	employee := models.Employee{
		Name:       name,
		Email:      email,
		Department: department,
	}
	if err := s.employeeRepo.Create(&employee); err != nil {
		return Result{}, err
	}

	return Result{Status: StatusSuccess, Message: "✅ 員工新增成功"}, nil
}

// Update 更新員工的全部欄位
// 不存在時回傳 repository.ErrNotFound；Email 不會重新檢查唯一性
func (s *EmployeeService) Update(id uint, name, email, department string) (Result, error) {
	employee, err := s.employeeRepo.FindByID(id)
	if err != nil {
		return Result{}, err
	}

	employee.Name = name
	employee.Email = email
	employee.Department = department
	if err := s.employeeRepo.Update(employee); err != nil {
		return Result{}, err
	}

	return Result{Status: StatusSuccess, Message: "✏️ 員工資料已更新"}, nil
}

// Delete 永久刪除員工，不存在時回傳 repository.ErrNotFound
func (s *EmployeeService) Delete(id uint) (Result, error) {
	employee, err := s.employeeRepo.FindByID(id)
	if err != nil {
		return Result{}, err
	}

	if err := s.employeeRepo.Delete(employee); err != nil {
		return Result{}, err
	}

	return Result{Status: StatusInfo, Message: "🗑️ 員工已刪除"}, nil
}
