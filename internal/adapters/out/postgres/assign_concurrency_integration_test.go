package postgres_test

import (
	"context"
	"sync"

	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// uowFactoryAdapter exposes the ports factory under the command handlers'
// factory interface.
type uowFactoryAdapter struct {
	factory ports.UnitOfWorkFactory
}

func (a uowFactoryAdapter) Create() commands.UoW {
	return a.factory.Create()
}

// TestConcurrentAssignment_SameOrder verifies that two transactions racing to
// assign the same order serialize on the locked order row: exactly one wins,
// the loser re-reads the committed status and is refused, and the order ends
// up with a single active assignment even though two workers were free to
// take it.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentAssignment_SameOrder() {
	ctx := context.Background()

	testOrder := createTestOrder()
	worker1 := createAvailableWorker(&suite.Suite)
	worker2 := createAvailableWorker(&suite.Suite)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.WorkerRepository().Add(ctx, worker1))
	suite.Require().NoError(uow.WorkerRepository().Add(ctx, worker2))
	suite.Require().NoError(uow.Commit(ctx))

	handler := commands.NewAssignOrderCommandHandler(uowFactoryAdapter{factory: suite.factory})
	cmd, err := commands.NewAssignOrderCommand(testOrder.ID())
	suite.Require().NoError(err)

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	var refusals []error
	for err := range results {
		if err == nil {
			successes++
		} else {
			refusals = append(refusals, err)
		}
	}

	suite.Equal(1, successes, "Exactly one assignment attempt should win")
	suite.Require().Len(refusals, 1)
	suite.ErrorIs(refusals[0], errs.ErrIllegalState, "The loser should see the order already assigned")

	suite.Equal(int64(1), suite.countActiveAssignmentsByOrder(testOrder.ID()),
		"A raced order must end up with a single active assignment")

	persisted, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OutForDelivery, persisted.Status())
}

// TestConcurrentAssignment_SameWorker verifies that two transactions racing
// for the same worker serialize on the locked worker row. The attempt that
// finds the row locked skips it and is refused for lack of capacity; whatever
// the interleaving, the worker's persisted queue holds one assignment per won
// order and a single Current.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentAssignment_SameWorker() {
	ctx := context.Background()

	order1 := createTestOrder()
	order2 := createTestOrder()
	testWorker := createAvailableWorker(&suite.Suite)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, order2))
	suite.Require().NoError(uow.WorkerRepository().Add(ctx, testWorker))
	suite.Require().NoError(uow.Commit(ctx))

	handler := commands.NewAssignOrderCommandHandler(uowFactoryAdapter{factory: suite.factory})

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for _, ord := range []*order.Order{order1, order2} {
		cmd, err := commands.NewAssignOrderCommand(ord.ID())
		suite.Require().NoError(err)

		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		suite.ErrorIs(err, errs.ErrNoCapacity,
			"An attempt that found the worker's row locked is refused, not queued blind")
	}
	suite.GreaterOrEqual(successes, 1, "The attempt holding the lock must win")

	var active []assignmentrepo.AssignmentDTO
	err := suite.db.
		Where("worker_id = ? AND status IN ?", testWorker.ID().Bytes(), activeAssignmentStatuses()).
		Find(&active).Error
	suite.Require().NoError(err)
	suite.Len(active, successes, "One persisted assignment per won order")

	currents := 0
	for _, dto := range active {
		if dto.Status == int(assignment.Current) {
			currents++
		}
	}
	suite.Equal(1, currents, "The queue holds a single Current regardless of interleaving")
}

func (suite *UnitOfWorkIntegrationTestSuite) countActiveAssignmentsByOrder(orderID kernel.UUID) int64 {
	var count int64
	err := suite.db.Model(&assignmentrepo.AssignmentDTO{}).
		Where("order_id = ? AND status IN ?", orderID.Bytes(), activeAssignmentStatuses()).
		Count(&count).Error
	suite.Require().NoError(err)
	return count
}

func activeAssignmentStatuses() []int {
	return []int{int(assignment.Pending), int(assignment.Current)}
}
