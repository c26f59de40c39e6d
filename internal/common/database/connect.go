package database

import "context"

// Pool is a connection pool that can be health-checked and released.
type Pool interface {
	Ping(ctx context.Context) error
	Close() error
}

// PingOrClose pings p and closes it if the ping fails, so a retried
// connect leaves at most one pool open.
func PingOrClose(ctx context.Context, p Pool) error {
	if err := p.Ping(ctx); err != nil {
		_ = p.Close()
		return err
	}
	return nil
}
