package container

import (
	"database/sql"
	"log"

	"assettrack/internal/assets"
	"assettrack/internal/assignments"
	"assettrack/internal/employees"
	"assettrack/internal/integrations/googlesheets"
	"assettrack/internal/integrations/jira"
	"assettrack/internal/repository"
	"assettrack/internal/reports"
	"assettrack/internal/users"
	"assettrack/pkg/security"
)

type Container struct {
	Repository         *repository.Repository
	LoginHandler       *security.LoginHandler
	AssetsHandler      *assets.AssetsHandler
	EmployeesHandler   *employees.EmployeesHandler
	AssignmentsHandler *assignments.AssignmentsHandler
	ReportsHandler     *reports.ReportsHandler
	UserHandler        *users.UsersHandler
	JiraHandler        *jira.JiraHandler
}

func NewAppContainer(db *sql.DB) *Container {
	repo := repository.NewRepository(db)

	jiraService := jira.NewJiraService()

	exporter, err := googlesheets.NewReportExporter()
	if err != nil {
		log.Printf("spreadsheet export disabled: %v", err)
		exporter = nil
	}

	assetsRepo := assets.NewRepository(repo)
	assignmentsRepo := assignments.NewRepository(repo)
	employeesRepo := employees.NewRepository(repo)
	reportsRepo := reports.NewRepository(repo)
	userRepo := users.NewRepository(repo)

	assetService := assets.NewAssetService(assetsRepo, assignmentsRepo, jiraService)
	assignmentService := assignments.NewAssignmentService(repo, assignmentsRepo, assetsRepo)
	employeeService := employees.NewEmployeeService(employeesRepo, assignmentsRepo)

	var reportExporter reports.ReportExporter
	if exporter != nil {
		reportExporter = exporter
	}

	return &Container{
		Repository:         repo,
		LoginHandler:       security.NewLoginHandler(repo),
		AssetsHandler:      assets.NewAssetsHandler(assetService),
		EmployeesHandler:   employees.NewEmployeesHandler(employeeService),
		AssignmentsHandler: assignments.NewHandler(assignmentService),
		ReportsHandler:     reports.NewReportsHandler(reportsRepo, reportExporter),
		UserHandler:        users.NewHandler(userRepo),
		JiraHandler:        jira.NewJiraHandler(jiraService),
	}
}
