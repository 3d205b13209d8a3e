package goal

import "context"

type StubGoalRepo struct {
	byUser map[int][]Goal
}

func NewStubGoalRepo() *StubGoalRepo {
	return &StubGoalRepo{byUser: make(map[int][]Goal)}
}

func (s *StubGoalRepo) Store(ctx context.Context, userId int, goal Goal) error {
	s.byUser[userId] = append(s.byUser[userId], goal)
	return nil
}

func (s *StubGoalRepo) GetAll(ctx context.Context, userId int) ([]Goal, error) {
	return s.byUser[userId], nil
}

func (s *StubGoalRepo) Get(ctx context.Context, userId int, id string) (Goal, error) {
	for _, goal := range s.byUser[userId] {
		if goal.ID == id {
			return goal, nil
		}
	}
	return Goal{}, ErrGoalNotFound
}

func (s *StubGoalRepo) UpdateCurrentAmount(ctx context.Context, userId int, id string, amount float64) error {
	goals := s.byUser[userId]
	for i := range goals {
		if goals[i].ID == id {
			goals[i].CurrentAmount = amount
			return nil
		}
	}
	return ErrGoalNotFound
}

func (s *StubGoalRepo) Delete(ctx context.Context, userId int, id string) (bool, error) {
	goals := s.byUser[userId]
	for i := range goals {
		if goals[i].ID == id {
			s.byUser[userId] = append(goals[:i], goals[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubGoalRepo) Reset() {
	s.byUser = make(map[int][]Goal)
}
