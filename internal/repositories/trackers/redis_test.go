package trackers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	dnderr "github.com/KirkDiggler/initiative-bot-discord/internal/errors"
	"github.com/KirkDiggler/initiative-bot-discord/internal/repositories/trackers"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       trackers.Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = trackers.NewRedis(s.mockClient)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestSave() {
	ctx := context.Background()
	tr := sampleTracker()

	expectedData, err := json.Marshal(tr)
	s.Require().NoError(err)

	// Happy path
	s.mock.ExpectSet("tracker:c1", string(expectedData), 0).SetVal("OK")
	s.mock.ExpectSAdd("trackers", "c1").SetVal(1)

	s.NoError(s.repo.Save(ctx, "c1", tr))
	s.NoError(s.mock.ExpectationsWereMet())

	// Dependency error
	s.mock.ExpectSet("tracker:c1", string(expectedData), 0).SetErr(errors.New("redis error"))

	s.Error(s.repo.Save(ctx, "c1", tr))
	s.NoError(s.mock.ExpectationsWereMet())

	// Input validation
	s.Error(s.repo.Save(ctx, "c1", nil))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	tr := sampleTracker()

	data, err := json.Marshal(tr)
	s.Require().NoError(err)

	s.mock.ExpectGet("tracker:c1").SetVal(string(data))

	got, err := s.repo.Get(ctx, "c1")
	s.Require().NoError(err)
	s.Equal("Hero", got.Combatants[0].Name)
	s.Equal(tr.CurrentIndex, got.CurrentIndex)
	s.Equal(tr.Round, got.Round)
	s.True(got.IsActive)
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("tracker:missing").RedisNil()

	_, err := s.repo.Get(context.Background(), "missing")
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGet_Error() {
	s.mock.ExpectGet("tracker:c1").SetErr(errors.New("connection refused"))

	_, err := s.repo.Get(context.Background(), "c1")
	s.Error(err)
	s.False(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	s.mock.ExpectDel("tracker:c1").SetVal(1)
	s.mock.ExpectSRem("trackers", "c1").SetVal(1)

	s.NoError(s.repo.Delete(context.Background(), "c1"))
}

func (s *RedisRepoTestSuite) TestListChannelIDs() {
	s.mock.ExpectSMembers("trackers").SetVal([]string{"c2", "c1"})

	ids, err := s.repo.ListChannelIDs(context.Background())
	s.Require().NoError(err)
	s.Equal([]string{"c1", "c2"}, ids)
}
