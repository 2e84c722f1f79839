package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/dmitrijs2005/authshell/internal/common"
	"github.com/dmitrijs2005/authshell/internal/logging"
)

type Storage struct {
	standard Engine
	secure   Engine
	logger   logging.Logger
}

func New(standard, secure Engine, logger logging.Logger) *Storage {
	return &Storage{
		standard: standard,
		secure:   secure,
		logger:   logger.With("module", "storage"),
	}
}

func (s *Storage) engineFor(key string) Engine {
	if IsSecureKey(key) {
		return s.secure
	}
	return s.standard
}

// lookup reads key and reports whether it was found. A missing key is not
// an error; any other engine failure is logged and returned.
func (s *Storage) lookup(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.engineFor(key).Get(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, false, nil
		}
		s.logger.Error(ctx, "storage read failed", "key", key, "error", err)
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

// raw is lookup with engine failures treated as a missing key.
func (s *Storage) raw(ctx context.Context, key string) ([]byte, bool) {
	value, found, err := s.lookup(ctx, key)
	if err != nil {
		return nil, false
	}
	return value, found
}

func (s *Storage) write(ctx context.Context, key string, value []byte) error {
	if err := s.engineFor(key).Set(ctx, key, value); err != nil {
		s.logger.Error(ctx, "storage write failed", "key", key, "error", err)
		return err
	}
	return nil
}

// encodeValue stores scalars in their plain text form and everything else
// as JSON.
func encodeValue(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case bool:
		return []byte(strconv.FormatBool(v)), nil
	case int:
		return []byte(strconv.FormatInt(int64(v), 10)), nil
	case int8:
		return []byte(strconv.FormatInt(int64(v), 10)), nil
	case int16:
		return []byte(strconv.FormatInt(int64(v), 10)), nil
	case int32:
		return []byte(strconv.FormatInt(int64(v), 10)), nil
	case int64:
		return []byte(strconv.FormatInt(v, 10)), nil
	case uint:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint8:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint16:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint32:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint64:
		return []byte(strconv.FormatUint(v, 10)), nil
	case float32:
		return []byte(strconv.FormatFloat(float64(v), 'g', -1, 32)), nil
	case float64:
		return []byte(strconv.FormatFloat(v, 'g', -1, 64)), nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode value: %w", err)
		}
		return b, nil
	}
}

// SetItem stores a string, number, bool or JSON-encodable value.
// An encoding failure is returned and nothing is written.
func (s *Storage) SetItem(ctx context.Context, key string, value any) error {
	b, err := encodeValue(value)
	if err != nil {
		s.logger.Error(ctx, "storage encode failed", "key", key, "error", err)
		return err
	}
	return s.write(ctx, key, b)
}

// GetItem returns the decoded JSON value stored under key, the raw string if
// it is not valid JSON, or fallback if the key is missing.
// Numbers come back as float64, as with any untyped JSON decoding.
func (s *Storage) GetItem(ctx context.Context, key string, fallback any) any {
	b, ok := s.raw(ctx, key)
	if !ok {
		return fallback
	}
	var v any
	if err := json.Unmarshal(b, &v); err == nil {
		return v
	}
	return string(b)
}

func (s *Storage) SetString(ctx context.Context, key, value string) error {
	return s.write(ctx, key, []byte(value))
}

func (s *Storage) GetString(ctx context.Context, key, fallback string) string {
	b, ok := s.raw(ctx, key)
	if !ok {
		return fallback
	}
	return string(b)
}

// LookupString is GetString for callers that must tell a missing key apart
// from a value that exists but cannot be read.
func (s *Storage) LookupString(ctx context.Context, key string) (string, bool, error) {
	b, found, err := s.lookup(ctx, key)
	if err != nil || !found {
		return "", false, err
	}
	return string(b), true, nil
}

func (s *Storage) SetJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		s.logger.Error(ctx, "storage encode failed", "key", key, "error", err)
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.write(ctx, key, b)
}

// GetJSON decodes the value under key into dst. A missing key reports
// found=false with no error. An engine failure or a value that is not valid
// JSON for dst is returned as an error.
func (s *Storage) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	b, found, err := s.lookup(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// RemoveItem deletes keys, grouping them per namespace.
func (s *Storage) RemoveItem(ctx context.Context, keys ...string) error {
	var std, sec []string
	for _, k := range keys {
		if IsSecureKey(k) {
			sec = append(sec, k)
		} else {
			std = append(std, k)
		}
	}

	var errs []error
	if len(sec) > 0 {
		if err := s.secure.Delete(ctx, sec...); err != nil {
			s.logger.Error(ctx, "storage delete failed", "keys", sec, "error", err)
			errs = append(errs, err)
		}
	}
	if len(std) > 0 {
		if err := s.standard.Delete(ctx, std...); err != nil {
			s.logger.Error(ctx, "storage delete failed", "keys", std, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Clear wipes both namespaces. The secure-namespace salt survives so values
// written afterwards stay readable with the same passphrase.
func (s *Storage) Clear(ctx context.Context) error {
	var errs []error
	if err := s.secure.Clear(ctx); err != nil {
		errs = append(errs, err)
	}

	keys, err := s.standard.Keys(ctx)
	if err != nil {
		errs = append(errs, err)
	} else {
		drop := make([]string, 0, len(keys))
		for _, k := range keys {
			if k != saltKey {
				drop = append(drop, k)
			}
		}
		if err := s.standard.Delete(ctx, drop...); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		s.logger.Error(ctx, "storage clear failed", "error", err)
		return err
	}
	return nil
}

// AllKeys lists the keys of both namespaces in sorted order.
func (s *Storage) AllKeys(ctx context.Context) []string {
	all := make([]string, 0)
	for _, e := range []Engine{s.standard, s.secure} {
		keys, err := e.Keys(ctx)
		if err != nil {
			s.logger.Error(ctx, "storage list failed", "error", err)
			continue
		}
		for _, k := range keys {
			if k != saltKey {
				all = append(all, k)
			}
		}
	}
	sort.Strings(all)
	return all
}

func (s *Storage) Contains(ctx context.Context, key string) bool {
	_, err := s.engineFor(key).Get(ctx, key)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		s.logger.Error(ctx, "storage read failed", "key", key, "error", err)
	}
	return err == nil
}
