package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/workerrepo"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&workerrepo.WorkerDTO{},
		&assignmentrepo.AssignmentDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, workers, assignments").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.WorkerRepository(), "First instance should provide worker repository")
	suite.NotNil(uow1.AssignmentRepository(), "First instance should provide assignment repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.WorkerRepository(), "Second instance should provide worker repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify order persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_MultiRepositoryTransaction verifies multiple repository operations
// within a single transaction work atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	testWorker := createAvailableWorker(&suite.Suite)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.WorkerRepository().Add(ctx, testWorker)
	suite.Require().NoError(err)

	// Bind the order to the worker the way the scheduler does
	now := time.Now().UTC()
	asg, err := assignment.NewAssignment(
		kernel.NewUUID(), testOrder.ID(), testWorker.ID(),
		assignment.Current, now, now.Add(45*time.Minute),
	)
	suite.Require().NoError(err)

	err = uow.AssignmentRepository().Add(ctx, asg)
	suite.Require().NoError(err)

	err = testOrder.Assign()
	suite.Require().NoError(err)
	err = testOrder.StartDelivery()
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify both entities persisted correctly with relationships
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OutForDelivery, retrievedOrder.Status())

	retrievedAsg, err := newUow.AssignmentRepository().GetCurrentByWorker(ctx, testWorker.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedAsg.OrderID())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	testWorker := createAvailableWorker(&suite.Suite)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.WorkerRepository().Add(ctx, testWorker)
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	_, err = uow.WorkerRepository().Get(ctx, testWorker.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify entities do not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.WorkerRepository().Get(ctx, testWorker.ID())
	suite.Require().Error(err, "Worker should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder()
	order2 := createTestOrder()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only order1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_DeliveryWorkflow tests the complete delivery workflow
// involving multiple aggregates and domain operations within a single transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeliveryWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testOrder := createTestOrder()
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	testWorker := createAvailableWorker(&suite.Suite)
	err = uow.WorkerRepository().Add(ctx, testWorker)
	suite.Require().NoError(err)

	now := time.Now().UTC()
	asg, err := assignment.NewAssignment(
		kernel.NewUUID(), testOrder.ID(), testWorker.ID(),
		assignment.Current, now, now.Add(45*time.Minute),
	)
	suite.Require().NoError(err)
	err = uow.AssignmentRepository().Add(ctx, asg)
	suite.Require().NoError(err)

	err = testOrder.Assign()
	suite.Require().NoError(err)
	err = testOrder.StartDelivery()
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	// Hand over and close out the delivery
	err = asg.Deliver(now.Add(30 * time.Minute))
	suite.Require().NoError(err)
	err = uow.AssignmentRepository().Update(ctx, asg)
	suite.Require().NoError(err)

	err = testOrder.Deliver()
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state using a new unit of work
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, retrievedOrder.Status())

	active, err := newUow.AssignmentRepository().GetActiveByWorker(ctx, testWorker.ID())
	suite.Require().NoError(err)
	suite.Empty(active, "Worker should have no active assignments after delivery")

	// Verify worker appears available again
	picked, err := newUow.WorkerRepository().GetFirstAvailable(ctx)
	suite.Require().NoError(err)
	suite.Equal(testWorker.ID(), picked.ID())
}

// TestUnitOfWork_PartialFailureScenario tests behavior when some operations succeed and others fail.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PartialFailureScenario() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create initial order outside transaction
	existingOrder := createTestOrder()
	err := uow.OrderRepository().Add(ctx, existingOrder)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	newOrder := createTestOrder()
	newWorker := createAvailableWorker(&suite.Suite)

	err = uow.OrderRepository().Add(ctx, newOrder)
	suite.Require().NoError(err)
	err = uow.WorkerRepository().Add(ctx, newWorker)
	suite.Require().NoError(err)

	// Try to add duplicate order (should fail)
	duplicateOrder, err := order.RestoreOrder(
		existingOrder.ID(),
		existingOrder.RecipientName(),
		existingOrder.RecipientEmail(),
		existingOrder.Address(),
		order.Pending,
	)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, duplicateOrder)
	suite.Require().Error(err, "Adding duplicate order should fail")

	// Even though some operations succeeded, rollback should undo everything
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, existingOrder.ID())
	suite.Require().NoError(err, "Existing order should still exist")

	_, err = newUow.OrderRepository().Get(ctx, newOrder.ID())
	suite.Require().Error(err, "New order should not exist after rollback")

	_, err = newUow.WorkerRepository().Get(ctx, newWorker.ID())
	suite.Require().Error(err, "New worker should not exist after rollback")
}

// TestUnitOfWork_QueryConsistency verifies query results are consistent within transactions.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_QueryConsistency() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create initial data outside transaction
	order1 := createTestOrder()
	order2 := createTestOrder()

	err := uow.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Assign one order
	err = order1.Assign()
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, order1)
	suite.Require().NoError(err)

	// Backlog should include order2 but not order1
	backlog, err := uow.OrderRepository().GetBacklog(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(backlog, 1)
	suite.Equal(order2.ID(), backlog[0].ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify queries still return consistent results after commit
	newUow := suite.factory.Create()

	backlog, err = newUow.OrderRepository().GetBacklog(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(backlog, 1)
	suite.Equal(order2.ID(), backlog[0].ID())
}

// createTestOrder creates a valid order for testing purposes.
func createTestOrder() *order.Order {
	testOrder, _ := order.NewOrder(kernel.NewUUID(), "Pat Doe", "recipient@example.com", "5 Main St")
	return testOrder
}

// createAvailableWorker creates an accepted worker who has started a day.
func createAvailableWorker(s *suite.Suite) *worker.Worker {
	vehicle, err := worker.NewVehicle(worker.VehicleBicycle, "")
	s.Require().NoError(err)

	wrk, err := worker.NewWorker(kernel.NewUUID(), "Alex Reed", "+15550100", "worker@example.com", vehicle)
	s.Require().NoError(err)
	s.Require().NoError(wrk.Accept())
	s.Require().NoError(wrk.StartDay())
	return wrk
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
