package account

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("account not found")
	ErrWrongPassword = errors.New("wrong password")
	ErrUnauthorized  = errors.New("authority code is wrong")
	ErrNameTaken     = errors.New("account name already taken")
)

// Kind is the closed set of account kinds. It gates which operations an
// identity may perform; there is no other polymorphism in the system.
type Kind string

const (
	KindMember Kind = "member"
	KindAdmin  Kind = "admin"
)

func (k Kind) Valid() bool { return k == KindMember || k == KindAdmin }

// CanCloseOrders reports whether this kind may transition a loan to closed.
func (k Kind) CanCloseOrders() bool { return k == KindAdmin }

// CanViewAllOrders reports whether this kind may read the unfiltered order set.
func (k Kind) CanViewAllOrders() bool { return k == KindAdmin }

type Account struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	AccountID string `gorm:"column:account_id;type:char(32);not null;uniqueIndex:ux_accounts_account_id"`
	// Name is unique within a kind, enforced by the composite index.
	Name      string    `gorm:"column:name;size:64;not null;uniqueIndex:ux_accounts_kind_name,priority:2"`
	Password  string    `gorm:"column:password;size:128;not null"`
	Kind      Kind      `gorm:"column:kind;type:enum('member','admin');not null;uniqueIndex:ux_accounts_kind_name,priority:1"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Account) TableName() string { return "accounts" }

// Identity is the view of an account that flows through the system after
// authentication. It is passed explicitly into every core call; there is no
// ambient current-user slot.
type Identity struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Kind      Kind   `json:"kind"`
}

func (a *Account) Identity() Identity {
	return Identity{AccountID: a.AccountID, Name: a.Name, Kind: a.Kind}
}
