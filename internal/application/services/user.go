package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"userdocs-api/internal/application/ports"
	domain "userdocs-api/internal/domain/user"
	"userdocs-api/internal/infrastructure/mq"
	"userdocs-api/internal/interface/api/rest/dto/user"
)

type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

// normalizeEmail keeps email matching case-insensitive everywhere: rows are
// stored lowercased and lookups lowercase before comparing.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) CreateUser(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	uRet, err := us.userRepository.CreateUser(ctx, normalizeEmail(email), passwordHash)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Action:  mq.ActionUserCreated,
			UserID:  strconv.FormatUint(uint64(uRet.ID), 10),
			Payload: user.ToResponseUser(*uRet),
		}
	}

	us.mCounter.WithLabelValues("user_signup_total").Inc()

	return uRet, nil
}

// UpdateProfile is partial: nil fields keep their stored values.
func (us *UserService) UpdateProfile(ctx context.Context, id domain.ID, name, avatarURL *string) (*domain.User, error) {
	uRet, err := us.userRepository.UpdateProfile(ctx, id, name, avatarURL)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Action:  mq.ActionProfileUpdated,
			UserID:  strconv.FormatUint(uint64(uRet.ID), 10),
			Payload: user.ToResponseUser(*uRet),
		}
	}

	us.mCounter.WithLabelValues("profile_updated_total").Inc()

	return uRet, nil
}
