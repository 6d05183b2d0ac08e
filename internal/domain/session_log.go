package domain

// SessionLog records one login session of a client account. Rows are
// written by the auth layer on login; the admin surface only reads and
// deletes them.
type SessionLog struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	DeviceID     string `json:"device_id"`
	UserAgent    string `json:"user_agent"`
	IPAddress    string `json:"ip_address"`
	LoginAt      string `json:"login_at"`
	LastActiveAt string `json:"last_active_at"`
}

func (l SessionLog) EntityID() string { return l.ID }
