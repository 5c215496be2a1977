package user

import "context"

type Repository interface {
	Save(ctx context.Context, u *User) error
	Delete(ctx context.Context, sid string) error
	GetBySID(ctx context.Context, sid string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Count(ctx context.Context) (int64, error)
}
