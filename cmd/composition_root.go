package cmd

import (
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/notify"
	"dispatch/internal/adapters/out/postgres"
	redisout "dispatch/internal/adapters/out/redis"
	"dispatch/internal/core/application/otp"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All handlers share
// the same unit of work factory so every request gets its own transaction.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	codes      *otp.Gateway
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from the given infrastructure
// connections. Construction failures are fatal: a process without a code
// gateway or notifier cannot serve completions.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	logger *slog.Logger,
) CompositionRoot {
	codeCache, err := redisout.NewCodeCache(redisClient)
	if err != nil {
		log.Fatalf("failed to create code cache: %v", err)
	}

	codes, err := otp.NewGateway(codeCache)
	if err != nil {
		log.Fatalf("failed to create completion code gateway: %v", err)
	}

	notifier, err := notify.NewSMTPNotifier(notify.SMTPConfig{
		Host: configs.SMTPHost,
		Port: configs.SMTPPort,
		From: configs.SMTPFrom,
	})
	if err != nil {
		log.Fatalf("failed to create notifier: %v", err)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		codes:      codes,
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRegisterWorkerCommandHandler() commands.RegisterWorkerCommandHandler {
	return commands.NewRegisterWorkerCommandHandler(c.workerUoWFactory())
}

func (c *CompositionRoot) CreateAcceptWorkerCommandHandler() commands.AcceptWorkerCommandHandler {
	return commands.NewAcceptWorkerCommandHandler(c.workerUoWFactory())
}

func (c *CompositionRoot) CreateRejectWorkerCommandHandler() commands.RejectWorkerCommandHandler {
	return commands.NewRejectWorkerCommandHandler(c.workerUoWFactory())
}

func (c *CompositionRoot) CreateStartDayCommandHandler() commands.StartDayCommandHandler {
	return commands.NewStartDayCommandHandler(
		c.workerUoWFactory(),
		c.CreateReprocessBacklogCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateEndDayCommandHandler() commands.EndDayCommandHandler {
	return commands.NewEndDayCommandHandler(c.workerUoWFactory())
}

func (c *CompositionRoot) CreateMarkUnavailableCommandHandler() commands.MarkUnavailableCommandHandler {
	return commands.NewMarkUnavailableCommandHandler(c.workerUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateReprocessBacklogCommandHandler() commands.ReprocessBacklogCommandHandler {
	return commands.NewReprocessBacklogCommandHandler(
		c.uoWFactory(),
		c.CreateAssignOrderCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateInitiateCompletionCommandHandler() commands.InitiateCompletionCommandHandler {
	return commands.NewInitiateCompletionCommandHandler(
		c.uoWFactory(),
		c.codes,
		c.notifier,
		c.logger,
	)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(
		c.uoWFactory(),
		c.codes,
		c.CreateReprocessBacklogCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetWorkerBoardQueryHandler() queries.GetWorkerBoardQueryHandler {
	return queries.NewGetWorkerBoardQueryHandler(c.gormDB)
}

// CreateIdentityResolver resolves bearer credentials against the workers table.
func (c *CompositionRoot) CreateIdentityResolver() ports.IdentityResolver {
	return postgres.NewGormIdentityResolver(c.gormDB)
}

// CreateHTTPServer assembles the inbound HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateIdentityResolver(),
		c.CreateRegisterWorkerCommandHandler(),
		c.CreateAcceptWorkerCommandHandler(),
		c.CreateRejectWorkerCommandHandler(),
		c.CreateStartDayCommandHandler(),
		c.CreateEndDayCommandHandler(),
		c.CreateMarkUnavailableCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateAssignOrderCommandHandler(),
		c.CreateInitiateCompletionCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		c.CreateReprocessBacklogCommandHandler(),
		c.CreateGetWorkerBoardQueryHandler(),
	)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager(sweepSchedule string) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReprocessBacklogCommandHandler(), sweepSchedule, c.logger)
}

func (c *CompositionRoot) workerUoWFactory() commands.WorkerUoWFactory {
	return FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncWorkerUoWFactory func() commands.WorkerUoW

func (f FuncWorkerUoWFactory) Create() commands.WorkerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
