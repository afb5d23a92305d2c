package strategy

import (
	"spin2win/internal/engine/kaprekar"
	"spin2win/internal/engine/ledger"
	"spin2win/internal/engine/session"
	"spin2win/internal/engine/staking"
)

type CreateSessionRequest struct {
	Preset string          `json:"preset,omitempty"` // Имя пресета из config.yaml
	Config *session.Config `json:"config,omitempty"` // Явная конфигурация, важнее пресета
}

type CreateSessionResponse struct {
	SessionID string           `json:"session_id"`
	Token     string           `json:"token"`            // Bearer-токен для /sessions/{id}
	Preset    string           `json:"preset,omitempty"` // Пусто для явной конфигурации
	Snapshot  SnapshotResponse `json:"snapshot"`
}

type SpinRequest struct {
	Number *int `json:"number"` // Номер 0..36
}

type Seed struct {
	Text     string `json:"text"`
	Digits   [4]int `json:"digits"`
	Value    int    `json:"value"`
	Mirrored bool   `json:"mirrored"` // В окне был ноль
	Padded   int    `json:"padded"`   // Сколько цифр добито филлером
}

type SpinResponse struct {
	Spin       int             `json:"spin"`
	State      string          `json:"state"`
	BetSeed    string          `json:"bet_seed,omitempty"` // Сид, на который играл этот спин
	BetOn      []int           `json:"bet_on,omitempty"`
	Hit        *bool           `json:"hit"` // null, если спин не оценивался
	Net        *int            `json:"net"`
	Stake      int             `json:"stake"`
	NumbersBet int             `json:"numbers_bet"`
	Skipped    bool            `json:"skipped"`
	Seed       *Seed           `json:"seed"` // Сид на следующий спин
	Prediction []int           `json:"prediction"`
	Rebuilt    bool            `json:"rebuilt"`
	Transform  *kaprekar.Trace `json:"transform,omitempty"`
	Balance    int             `json:"balance"`
	StakeState staking.State   `json:"stake_state"`
	Ledger     ledger.Ledger   `json:"ledger"`
	Reset      bool            `json:"reset"`
}

type SnapshotResponse struct {
	State      string          `json:"state"`
	Window     []int           `json:"window"`
	Seed       *Seed           `json:"seed"`
	Prediction []int           `json:"prediction"`
	Transform  *kaprekar.Trace `json:"transform,omitempty"`
	StakeState staking.State   `json:"stake_state"`
	Ledger     ledger.Ledger   `json:"ledger"`
	Config     session.Config  `json:"config"`
	Resets     int             `json:"resets"`
}

type PresetsResponse struct {
	Presets map[string]session.Config `json:"presets"`
}
