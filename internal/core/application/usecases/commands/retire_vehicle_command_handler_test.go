package commands_test

import (
	"testing"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRetireVehicleCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRetireVehicleCommand(7)
	require.NoError(t, err)

	v := restoreActiveVehicle(t, 7)
	changes := ports.ChangeSet{VehicleIDs: []int64{7}}
	mockRepo := new(MockVehicleRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockVehicleUoWFactory)
	mockNotifier := new(MockChangeNotifier)

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, int64(7)).Return(v, nil).Once(),
		mockRepo.On("Update", ctx, v).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Changes").Return(changes).Once(),
		mockNotifier.On("Notify", ctx, changes).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRetireVehicleCommandHandler(mockFactory, mockNotifier)

	// Act
	retired, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, retired)
	assert.True(t, retired.IsRetired())
	assert.False(t, retired.IsActive())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestRetireVehicleCommandHandler_Handle_AlreadyRetiredIsIdempotent(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRetireVehicleCommand(7)
	require.NoError(t, err)

	v := restoreRetiredVehicle(t, 7)
	changes := ports.ChangeSet{VehicleIDs: []int64{7}}
	mockRepo := new(MockVehicleRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockVehicleUoWFactory)
	mockNotifier := new(MockChangeNotifier)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, int64(7)).Return(v, nil).Once(),
		mockRepo.On("Update", ctx, v).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Changes").Return(changes).Once(),
		mockNotifier.On("Notify", ctx, changes).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRetireVehicleCommandHandler(mockFactory, mockNotifier)

	// Act
	retired, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, retired.IsRetired())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestRetireVehicleCommandHandler_Handle_VehicleNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRetireVehicleCommand(99)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("vehicle", int64(99))
	mockRepo := new(MockVehicleRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockVehicleUoWFactory)
	mockNotifier := new(MockChangeNotifier)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, int64(99)).Return(nil, notFound).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRetireVehicleCommandHandler(mockFactory, mockNotifier)

	// Act
	retired, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, retired)
	mockNotifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestNewRetireVehicleCommand_InvalidID(t *testing.T) {
	testCases := []struct {
		name string
		id   int64
	}{
		{"zero id", 0},
		{"negative id", -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := commands.NewRetireVehicleCommand(tc.id)

			require.Error(t, err)
			assert.Zero(t, cmd)
		})
	}
}
