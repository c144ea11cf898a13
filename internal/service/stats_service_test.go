package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docintel-be/internal/entity"
)

func TestDashboardStatsCountsQueriesSinceMidnight(t *testing.T) {
	factory := newTestFactory()
	svc := NewStatsService(factory)
	owner := seedUser(t, factory, "jane@company.com", "secret123", entity.UserRoleUser)
	owner.StorageUsedMB = 120

	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	seedMessages := []entity.Message{
		{UserId: owner.Id, Content: "today", Role: entity.MessageRoleUser, CreatedAt: midnight.Add(time.Minute)},
		{UserId: owner.Id, Content: "yesterday", Role: entity.MessageRoleUser, CreatedAt: midnight.Add(-time.Minute)},
		// Assistant replies are not queries.
		{UserId: owner.Id, Content: "reply", Role: entity.MessageRoleAssistant, CreatedAt: midnight.Add(time.Minute)},
	}
	for i := range seedMessages {
		require.NoError(t, uow.MessageRepository().Create(ctx, &seedMessages[i]))
	}

	require.NoError(t, uow.DocumentRepository().Create(ctx, &entity.Document{
		UserId: owner.Id, Filename: "a.pdf", OriginalName: "a.pdf", FileType: "application/pdf",
	}))
	require.NoError(t, uow.DocumentRepository().Create(ctx, &entity.Document{
		UserId: owner.Id, Filename: "b.pdf", OriginalName: "b.pdf", FileType: "application/pdf", IsProcessing: true,
	}))

	stats, err := svc.DashboardStats(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalDocuments)
	assert.Equal(t, 1, stats.Processing)
	assert.Equal(t, 1, stats.QueriesToday)
	assert.Equal(t, 120, stats.StorageUsed)
}

func TestAnalyticsRangeValidation(t *testing.T) {
	factory := newTestFactory()
	svc := NewStatsService(factory)
	owner := seedUser(t, factory, "jane@company.com", "secret123", entity.UserRoleUser)

	for _, r := range []string{"day", "week", "month"} {
		resp, err := svc.Analytics(context.Background(), owner.Id, r)
		require.NoError(t, err, "range %q", r)
		assert.NotNil(t, resp)
	}

	_, err := svc.Analytics(context.Background(), owner.Id, "year")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestAnalyticsRealCountsAndSynthesizedShape(t *testing.T) {
	factory := newTestFactory()
	svc := NewStatsService(factory)
	owner := seedUser(t, factory, "jane@company.com", "secret123", entity.UserRoleUser)

	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.DocumentRepository().Create(ctx, &entity.Document{
		UserId: owner.Id, Filename: "deck.pptx", OriginalName: "deck.pptx", FileType: "application/vnd.ms-powerpoint",
	}))
	require.NoError(t, uow.MessageRepository().Create(ctx, &entity.Message{
		UserId: owner.Id, Content: "q", Role: entity.MessageRoleUser,
	}))

	resp, err := svc.Analytics(ctx, owner.Id, "week")
	require.NoError(t, err)

	assert.Equal(t, 1, resp.DocumentStats.TotalDocuments)
	assert.Equal(t, 1, resp.UserActivity.TotalQueries)
	assert.Len(t, resp.UserActivity.PopularTimes, 24)
	assert.Len(t, resp.Trends.DocumentsOverTime, 7)
	assert.Len(t, resp.Trends.QueriesOverTime, 7)
	require.NotEmpty(t, resp.Trends.FileTypes)
	assert.Equal(t, "powerpoint", resp.Trends.FileTypes[0].Type)
	assert.Equal(t, 100, resp.Trends.FileTypes[0].Percentage)
}
