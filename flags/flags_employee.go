package flags

import (
	"fmt"
	"strings"

	"engipec/global"
	"engipec/models"
	"engipec/utils"

	"github.com/go-playground/validator/v10"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Employee 创建员工账号，仓库只接受校验过的输入，校验在这里完成
func Employee(c *cli.Context) error {
	draft := models.EmployeeDraft{
		Name:       c.String("name"),
		Email:      c.String("email"),
		Password:   c.String("password"),
		Position:   c.String("position"),
		Department: c.String("department"),
	}

	if err := utils.Validate(draft); err != nil {
		msg := utils.FormatValidationError(err.(validator.ValidationErrors))
		global.Log.Error("员工数据校验失败", zap.String("error", msg))
		return fmt.Errorf("员工数据校验失败: %s", msg)
	}

	employee := accountStore.AddEmployee(draft)
	global.Log.Infof("员工%s创建成功,id:%d,email:%s", employee.Name, employee.ID, employee.Email)
	return nil
}

// ListEmployees 列出员工名册
func ListEmployees(c *cli.Context) error {
	employees := accountStore.Employees()

	fmt.Printf("%-5s %-20s %-30s %-15s %-15s\n", "ID", "姓名", "邮箱", "职位", "部门")
	fmt.Println(strings.Repeat("-", 90))
	for _, emp := range employees {
		fmt.Printf("%-5d %-20s %-30s %-15s %-15s\n",
			emp.ID, emp.Name, emp.Email, emp.Position, emp.Department)
	}
	fmt.Printf("共%d名员工\n", len(employees))
	return nil
}
