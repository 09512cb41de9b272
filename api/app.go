package api

import (
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mrigankar1134/DBProject/internal/config"
	"github.com/Mrigankar1134/DBProject/internal/dbrepo"
)

// Handlers groups one handler per API surface.
type Handlers struct {
	Customer  *CustomerHandler
	Branch    *BranchHandler
	Product   *ProductHandler
	Sale      *SaleHandler
	Financial *FinancialHandler
	Dashboard *DashboardHandler
}

// Application wires configuration, loggers and handlers together and owns the
// route table.
type Application struct {
	Config   *config.Config
	InfoLog  *log.Logger
	ErrorLog *log.Logger
	Handlers Handlers
}

func NewApplication(cfg *config.Config, db *pgxpool.Pool, infoLog, errorLog *log.Logger) *Application {
	return &Application{
		Config:   cfg,
		InfoLog:  infoLog,
		ErrorLog: errorLog,
		Handlers: Handlers{
			Customer:  NewCustomerHandler(dbrepo.NewCustomerRepo(db), infoLog, errorLog),
			Branch:    NewBranchHandler(dbrepo.NewBranchRepo(db), infoLog, errorLog),
			Product:   NewProductHandler(dbrepo.NewProductRepo(db), infoLog, errorLog),
			Sale:      NewSaleHandler(dbrepo.NewSaleRepo(db), infoLog, errorLog),
			Financial: NewFinancialHandler(dbrepo.NewFinancialRepo(db), infoLog, errorLog),
			Dashboard: NewDashboardHandler(dbrepo.NewReportRepo(db), infoLog, errorLog),
		},
	}
}
