package network

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/simplecontainer/apimethod/pkg/cache"
	"github.com/simplecontainer/apimethod/pkg/contracts/iresponse"
	"github.com/simplecontainer/apimethod/pkg/contracts/itransport"
	"github.com/simplecontainer/apimethod/pkg/logger"
	"github.com/simplecontainer/apimethod/pkg/static"
	"go.uber.org/zap"
)

func New(transport itransport.Transport, opts ...Option) *Executor {
	executor := &Executor{
		transport: transport,
		logger:    logger.Log,
	}

	for _, opt := range opts {
		opt(executor)
	}

	return executor
}

func WithCache(store *cache.Store) Option {
	return func(executor *Executor) {
		executor.cache = store
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(executor *Executor) {
		if log != nil {
			executor.logger = log
		}
	}
}

func CreateMethod[TInput any, TOutput any](executor *Executor, descriptor Descriptor) *APIMethod[TInput, TOutput] {
	return &APIMethod[TInput, TOutput]{
		executor:   executor,
		descriptor: descriptor.Clone(),
	}
}

func (method *APIMethod[TInput, TOutput]) Descriptor() Descriptor {
	return method.descriptor.Clone()
}

// Call executes the method without a body.
func (method *APIMethod[TInput, TOutput]) Call(ctx context.Context) *iresponse.Response[TOutput] {
	return Execute[TOutput](ctx, method.executor, method.descriptor, nil)
}

// Send executes the method with body, which is only attached when the verb
// carries one.
func (method *APIMethod[TInput, TOutput]) Send(ctx context.Context, body TInput) *iresponse.Response[TOutput] {
	return Execute[TOutput](ctx, method.executor, method.descriptor, body)
}

// Execute performs exactly one request described by descriptor and folds the
// outcome into an envelope. It never panics and never returns nil.
func Execute[TOutput any](ctx context.Context, executor *Executor, descriptor Descriptor, body any) (response *iresponse.Response[TOutput]) {
	id := uuid.New().String()
	log := executor.log().With(zap.String("request", id), zap.String("method", string(descriptor.Method)), zap.String("url", descriptor.URL))

	defer func() {
		if r := recover(); r != nil {
			log.Warn("request panicked", zap.Any("recovered", r))
			response = iresponse.Failure[TOutput](static.DEFAULT_ERROR_STATUS, recovered(r))
		}
	}()

	statusCode, payload, err := executor.roundTrip(ctx, log, descriptor, body)

	if err != nil {
		log.Warn("request failed", zap.Error(err))
		return iresponse.Failure[TOutput](static.DEFAULT_ERROR_STATUS, ErrorMessage(err))
	}

	response, err = decode[TOutput](statusCode, payload)

	if err != nil {
		log.Warn("invalid response payload", zap.Int("status", statusCode), zap.Error(err))
		return iresponse.Failure[TOutput](static.DEFAULT_ERROR_STATUS, ErrorMessage(err))
	}

	if response.Failed() {
		log.Debug("request answered with error", zap.Int("status", statusCode), zap.String("errMsg", response.ErrMsg))
	}

	return response
}

func (executor *Executor) log() *zap.Logger {
	if executor == nil || executor.logger == nil {
		return logger.Log
	}

	return executor.logger
}

func (executor *Executor) roundTrip(ctx context.Context, log *zap.Logger, descriptor Descriptor, body any) (int, []byte, error) {
	if err := descriptor.Validate(); err != nil {
		return 0, nil, err
	}

	reusable := executor.cache != nil && descriptor.Method.Cacheable() && descriptor.Cache.Reusable()

	if reusable {
		if entry, ok := executor.cache.Get(descriptor.CacheKey()); ok {
			log.Debug("serving cached response", zap.Int("status", entry.StatusCode))
			return entry.StatusCode, entry.Payload, nil
		}
	}

	var reader io.Reader

	if descriptor.SendsBody(body) {
		marshaled, err := json.Marshal(body)

		if err != nil {
			return 0, nil, err
		}

		reader = bytes.NewReader(marshaled)
	}

	req, err := http.NewRequestWithContext(ctx, string(descriptor.Method), descriptor.URL, reader)

	if err != nil {
		return 0, nil, err
	}

	req.Header = descriptor.Header()

	start := time.Now()
	resp, err := executor.transport.Do(req)

	if err != nil {
		return 0, nil, err
	}

	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)

	if err != nil {
		return 0, nil, err
	}

	log.Debug("request completed", zap.Int("status", resp.StatusCode), zap.Duration("took", time.Since(start)))

	if reusable && Ok(resp.StatusCode) {
		executor.cache.Set(descriptor.CacheKey(), &cache.Entry{
			StatusCode: resp.StatusCode,
			Payload:    payload,
		}, descriptor.Cache.Revalidate, descriptor.Cache.Tags)
	}

	return resp.StatusCode, payload, nil
}

func decode[TOutput any](statusCode int, payload []byte) (*iresponse.Response[TOutput], error) {
	empty := len(bytes.TrimSpace(payload)) == 0

	if Ok(statusCode) {
		if empty {
			return iresponse.Success[TOutput](statusCode, nil), nil
		}

		data := new(TOutput)

		if err := json.Unmarshal(payload, data); err != nil {
			return nil, err
		}

		return iresponse.Success(statusCode, data), nil
	}

	var parsed any

	if !empty {
		if err := json.Unmarshal(payload, &parsed); err != nil {
			return nil, err
		}
	}

	return iresponse.Failure[TOutput](statusCode, message(statusCode, parsed)), nil
}
