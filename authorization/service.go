package authorization

import (
	"context"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/authorization/business/engine"
	"encore.app/authorization/business/fraud"
	"encore.app/authorization/business/loader"
	"encore.app/authorization/business/rules"
	"encore.app/authorization/domain"
	"encore.app/authorization/idempotency"
	"encore.app/authorization/repository"
	"encore.app/authorization/repository/spending"
	"encore.app/authorization/workflow"
)

var authDB = sqldb.NewDatabase("authorization", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = playgroundvalidator.New()

const taskQueue = "spending-period"

//encore:service
type Service struct {
	engine   engine.Business
	repo     *repository.Repository
	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(authDB)

	rlog.Info("Initializing repository")
	repo := repository.NewRepository(pgxdb)

	limits := limitsFromConfig()
	loaders := loader.New(repo, limits, loaderTimeout())
	guard := domain.NewSpendingGuard(pgxdb, spending.New(pgxdb))
	detector := fraud.NewDetector(cfg.BlockedAccounts())
	ruleEngine := rules.NewEngine(rules.Default(limits))
	store := idempotency.NewStore(concurrentWait())

	temporalClient, err := client.Dial(client.Options{})
	if err != nil {
		return nil, err
	}

	w := worker.New(temporalClient, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.SpendingPeriod)
	w.RegisterActivity(workflow.CloseWindowActivity)
	w.RegisterActivity(workflow.RecalculateWindowActivity)
	workflow.SetActivityDependencies(repo.Spending)

	if err := w.Start(); err != nil {
		temporalClient.Close()
		return nil, err
	}

	notifier := &spendNotifier{
		temporal: temporalClient,
		spending: repo.Spending,
	}

	return &Service{
		engine:   engine.NewBusiness(loaders, store, guard, detector, ruleEngine, repo.Audit, limits, notifier),
		repo:     repo,
		temporal: temporalClient,
		worker:   w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}
