package transfer

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jlaffaye/ftp"
)

// Client defines the interface for feed file retrieval.
type Client interface {
	// Fetch downloads a single remote file to the given local path.
	Fetch(ctx context.Context, remotePath, localPath string) error
	// Close terminates the feed connection.
	Close() error
}

// NewClient dials the supplier feed host and authenticates.
// Credentials are validated before dialing so a misconfigured
// deployment fails immediately with a configuration error.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	if cfg.User == "" || cfg.Password == "" {
		return nil, fmt.Errorf("feed credentials are not configured (set TRANSFER_USER and TRANSFER_PASSWORD)")
	}

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	conn, err := ftp.Dial(addr,
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(time.Duration(timeout)*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial feed host %s: %w", addr, err)
	}

	if err := conn.Login(cfg.User, cfg.Password); err != nil {
		_ = conn.Quit()
		return nil, fmt.Errorf("failed to authenticate with feed host: %w", err)
	}

	return &ftpClient{conn: conn}, nil
}

type ftpClient struct {
	conn *ftp.ServerConn
}

func (c *ftpClient) Fetch(ctx context.Context, remotePath, localPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	resp, err := c.conn.Retr(remotePath)
	if err != nil {
		return fmt.Errorf("failed to retrieve %s: %w", remotePath, err)
	}
	defer resp.Close()

	out, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", localPath, err)
	}

	if _, err := io.Copy(out, resp); err != nil {
		out.Close()
		return fmt.Errorf("failed to download %s: %w", remotePath, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", localPath, err)
	}

	return nil
}

func (c *ftpClient) Close() error {
	return c.conn.Quit()
}
