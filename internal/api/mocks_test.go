package api

import (
	"github.com/stretchr/testify/mock"

	"booking-service/internal/db/models"
)

// MockUserStore mocks the user repository.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) CreateUser(user *models.User) (*models.User, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetUserByEmailWithPassword(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetUserByID(id int) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) UpdateUserFields(id int, name, tel *string) (*models.User, error) {
	args := m.Called(id, name, tel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) DeleteUser(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockReservationStore mocks the reservation repository.
type MockReservationStore struct {
	mock.Mock
}

func (m *MockReservationStore) GetReservationsByUser(userID int) ([]models.Reservation, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *MockReservationStore) GetReservationByID(id int) (*models.Reservation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *MockReservationStore) CreateReservation(userID, eventID, ticketAmount int) (*models.Reservation, error) {
	args := m.Called(userID, eventID, ticketAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *MockReservationStore) DeleteReservation(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockReservationStore) DeleteReservationsByUser(userID int) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockEventStore mocks the event repository.
type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) GetAllEvents() ([]models.Event, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventStore) GetEventByID(id int) (*models.Event, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventStore) CreateEvent(event *models.Event) (*models.Event, error) {
	args := m.Called(event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventStore) SaveAvailableTickets(event *models.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockEventStore) ReserveTickets(eventID, amount int) (bool, error) {
	args := m.Called(eventID, amount)
	return args.Bool(0), args.Error(1)
}

// MockPublisher mocks the message broker.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(message interface{}, key string) error {
	args := m.Called(message, key)
	return args.Error(0)
}
