package tracking_id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	prefix      = "PRCL"
	dateLayout  = "20060102"
	randomBytes = 3
)

type TrackingIDFactory struct {
	random io.Reader
}

func New() *TrackingIDFactory {
	return &TrackingIDFactory{
		random: rand.Reader,
	}
}

func NewWithReader(random io.Reader) *TrackingIDFactory {
	return &TrackingIDFactory{
		random: random,
	}
}

// New возвращает номер вида PRCL-YYYYMMDD-XXXXXX: дата по UTC и 6 hex-символов в верхнем регистре.
func (f *TrackingIDFactory) New(now time.Time) (string, error) {
	buf := make([]byte, randomBytes)
	_, err := io.ReadFull(f.random, buf)
	if err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return fmt.Sprintf("%s-%s-%s",
		prefix,
		now.UTC().Format(dateLayout),
		strings.ToUpper(hex.EncodeToString(buf)),
	), nil
}
