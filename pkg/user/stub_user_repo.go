package user

import (
	"context"
)

// StubUserRepo is an in-memory Repo for tests.
type StubUserRepo struct {
	users  map[int]User
	hashes map[int]string
	nextId int
}

func NewStubUserRepo() *StubUserRepo {
	return &StubUserRepo{
		users:  make(map[int]User),
		hashes: make(map[int]string),
		nextId: 1,
	}
}

func (s *StubUserRepo) CreateUser(ctx context.Context, user User, passwordHash string) (int, error) {
	id := s.nextId
	s.nextId++
	user.Id = id
	s.users[id] = user
	s.hashes[id] = passwordHash
	return id, nil
}

func (s *StubUserRepo) GetUser(ctx context.Context, id int) (User, error) {
	u, ok := s.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (s *StubUserRepo) GetUserByUid(ctx context.Context, uid string) (User, error) {
	for _, u := range s.users {
		if u.Uid == uid {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *StubUserRepo) GetCredentialsByEmail(ctx context.Context, email string) (User, string, error) {
	for id, u := range s.users {
		if u.Email == email {
			return u, s.hashes[id], nil
		}
	}
	return User{}, "", ErrUserNotFound
}

func (s *StubUserRepo) UpdateSettings(ctx context.Context, userId int, settings Settings) (bool, error) {
	u, ok := s.users[userId]
	if !ok {
		return false, nil
	}
	u.Settings = settings
	s.users[userId] = u
	return true, nil
}

func (s *StubUserRepo) GetAllUsers(ctx context.Context) ([]User, error) {
	users := make([]User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	return users, nil
}

func (s *StubUserRepo) DeleteUser(ctx context.Context, id int) error {
	delete(s.users, id)
	delete(s.hashes, id)
	return nil
}
