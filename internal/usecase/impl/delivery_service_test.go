package impl

import (
	"context"
	"testing"

	"upkeep/internal/domain/entity"
	mockRepo "upkeep/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryService_ListDeliveries_ClampsLimit(t *testing.T) {
	ledgerRepo := mockRepo.NewMockLedgerRepository(t)
	svc := NewDeliveryService(ledgerRepo)
	ctx := context.Background()
	userID := uuid.New()
	entries := []*entity.DeliveryLedgerEntry{{ID: uuid.New(), UserID: userID, Status: entity.DeliveryStatusSent}}

	ledgerRepo.EXPECT().FindByUser(ctx, userID, 100, 0).Return(entries, nil)

	got, err := svc.ListDeliveries(ctx, userID, 500, -3)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
