// Package transfer retrieves the raw feed files from the supplier's FTP host.
//
// It wraps the jlaffaye/ftp client behind a small Client interface so the
// fetch step can be mocked in unit tests (see core/transfer/mocks). A fetch
// failure is fatal for a sync run: the job either downloads all three feed
// tables or aborts before anything is parsed or written.
//
// # Credentials
//
// The FTP account has no baked-in defaults. NewClient refuses to dial when
// user or password is empty, so a misconfigured deployment fails with a clear
// configuration error instead of an auth rejection.
package transfer
