package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/DengYiping/catlink-cli/internal/catlink"
	"github.com/DengYiping/catlink-cli/internal/credentials"
	"github.com/DengYiping/catlink-cli/internal/region"
)

// ErrReauthUnavailable is returned when a token has expired but the
// stored record lacks the re-login secret, so no refresh can be
// attempted.
var ErrReauthUnavailable = errors.New("re-authentication unavailable (credentials stored without a password; log in again)")

// ClientFactory builds an API client for one region's credentials.
// Injectable so tests can point clients at stub servers.
type ClientFactory func(r region.Region, rec credentials.Record) *catlink.Client

// Runner executes per-region API calls against stored credentials,
// refreshing the session once on token expiry.
type Runner struct {
	store      credentials.Store
	logger     *slog.Logger
	newClient  ClientFactory
	clientOpts []catlink.Option
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the runner's logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClientOptions appends options applied to every constructed client.
func WithClientOptions(opts ...catlink.Option) RunnerOption {
	return func(r *Runner) {
		r.clientOpts = append(r.clientOpts, opts...)
	}
}

// WithClientFactory replaces client construction entirely.
func WithClientFactory(factory ClientFactory) RunnerOption {
	return func(r *Runner) {
		if factory != nil {
			r.newClient = factory
		}
	}
}

// NewRunner creates a Runner over the given credential store.
func NewRunner(store credentials.Store, opts ...RunnerOption) *Runner {
	r := &Runner{
		store:  store,
		logger: slog.Default(),
	}
	r.newClient = func(reg region.Region, rec credentials.Record) *catlink.Client {
		clientOpts := append([]catlink.Option{
			catlink.WithToken(rec.Token),
			catlink.WithInsecureSkipVerify(!rec.VerifySSL),
		}, r.clientOpts...)
		return catlink.New(reg.BaseURL(), clientOpts...)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Call is one authenticated API operation against a single region.
type Call[T any] func(ctx context.Context, c *catlink.Client) (T, error)

// Result is one region's outcome. Err is nil on success.
type Result[T any] struct {
	Region region.Region
	Value  T
	Err    error
}

// Run resolves the selector and executes call once per resolved region.
// Regions run concurrently; each touches a disjoint credential record and
// a disjoint remote host, and results are ordered by resolution order
// (region identity), not completion order. One region's failure never
// suppresses another's result. The returned error covers resolution and
// storage problems only; per-region outcomes live in the results.
func Run[T any](ctx context.Context, r *Runner, sel region.Selector, call Call[T]) ([]Result[T], error) {
	entries, err := Resolve(r.store, sel)
	if err != nil {
		return nil, err
	}

	results := make([]Result[T], len(entries))
	var g errgroup.Group
	for i, entry := range entries {
		g.Go(func() error {
			results[i] = runOne(ctx, r, entry, call)
			return nil
		})
	}
	_ = g.Wait()
	return results, nil
}

// runOne drives the bounded attempt sequence for one region:
// attempt, then on token expiry refresh once and retry once, terminal.
func runOne[T any](ctx context.Context, r *Runner, entry Entry, call Call[T]) Result[T] {
	client := r.newClient(entry.Region, entry.Record)

	value, err := call(ctx, client)
	if !catlink.IsTokenExpired(err) {
		return Result[T]{Region: entry.Region, Value: value, Err: err}
	}

	if !entry.Record.CanReauth() {
		return Result[T]{Region: entry.Region, Err: fmt.Errorf("%w: %w", err, ErrReauthUnavailable)}
	}

	r.logger.Debug("token expired, re-authenticating", "region", entry.Region)
	token, loginErr := client.Login(ctx, entry.Record.PhoneIAC, entry.Record.Phone, entry.Record.Password)
	if loginErr != nil {
		return Result[T]{Region: entry.Region, Err: fmt.Errorf("token expired; re-authentication failed: %w", loginErr)}
	}

	refreshed := entry.Record
	refreshed.Token = token
	if putErr := r.store.Put(entry.Region, refreshed); putErr != nil {
		return Result[T]{Region: entry.Region, Err: fmt.Errorf("persist refreshed token: %w", putErr)}
	}

	value, err = call(ctx, client)
	return Result[T]{Region: entry.Region, Value: value, Err: err}
}
