package users

// Account is one entry of the user table. An empty LockerID means the user
// can authenticate but owns no locker.
type Account struct {
	Username string
	Password string
	LockerID string
}

// DefaultAccounts is the built-in user table.
var DefaultAccounts = []Account{
	{Username: "user1", Password: "pass1", LockerID: "LOCKER001"},
}
