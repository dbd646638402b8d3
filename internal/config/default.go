package config

type ctxKey string

const (
	UidKey    ctxKey = "uid"
	RoleKey   ctxKey = "role"
	DeviceKey ctxKey = "device"
)

const (
	AccessCookieName  = "access"
	RefreshCookieName = "refresh"
)
