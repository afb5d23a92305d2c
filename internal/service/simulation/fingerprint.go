package simulation

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"spin2win/internal/engine/partition"
	"spin2win/internal/engine/session"
)

// Fingerprint Отпечаток пары (конфигурация, спины). Конфигурация берётся с подставленными значениями по умолчанию.
// Номера вне 0..36 отклоняются: каждый спин кодируется одним байтом
func Fingerprint(cfg session.Config, spins []int) (string, error) {
	for _, n := range spins {
		if !partition.ValidNumber(n) {
			return "", fmt.Errorf("%w: %d", session.ErrInvalidSpin, n)
		}
	}

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}

	raw, err := json.Marshal(cfg.WithDefaults())
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	h.Write(raw)
	// Разделитель: номера спинов в 0..36, 0xff среди них не встречается
	h.Write([]byte{0xff})

	buf := make([]byte, len(spins))
	for i, n := range spins {
		buf[i] = byte(n)
	}
	h.Write(buf)

	return hex.EncodeToString(h.Sum(nil)), nil
}
