package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	Password     string          `json:"password,omitempty"`
	Wallet       decimal.Decimal `json:"wallet"`
	FullName     string          `json:"full_name,omitempty"`
	GameID       string          `json:"game_id,omitempty"`
	ProfilePhoto string          `json:"profile_photo,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	IsBanned     bool            `json:"is_banned,omitempty"`
	IsAdmin      bool            `json:"is_admin,omitempty"`
}

type MatchStatus string

const (
	MatchUpcoming MatchStatus = "upcoming"
	MatchLive     MatchStatus = "live"
	MatchFinished MatchStatus = "finished"
)

type Registration struct {
	UserID     string `json:"user_id"`
	GameName   string `json:"game_name"`
	SlotNumber int    `json:"slot_number"`
}

type PrizeTier struct {
	Rank   string          `json:"rank"`
	Amount decimal.Decimal `json:"amount"`
}

type Match struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Mode           string          `json:"mode"`
	Map            string          `json:"map"`
	EntryFee       decimal.Decimal `json:"entry_fee"`
	Prize          decimal.Decimal `json:"prize"`
	PerKill        decimal.Decimal `json:"per_kill"`
	Status         MatchStatus     `json:"status"`
	JoinedPlayers  []string        `json:"joined_players"`
	Registrations  []Registration  `json:"registrations"`
	MaxPlayers     int             `json:"max_players"`
	StartTime      time.Time       `json:"start_time"`
	ImageURL       string          `json:"image_url,omitempty"`
	LiveLink       string          `json:"live_link,omitempty"`
	WinnerID       string          `json:"winner_id,omitempty"`
	IsCancelled    bool            `json:"is_cancelled,omitempty"`
	RoomID         string          `json:"room_id,omitempty"`
	RoomPassword   string          `json:"room_password,omitempty"`
	DetailedRules  string          `json:"detailed_rules,omitempty"`
	PrizeBreakdown []PrizeTier     `json:"prize_breakdown,omitempty"`
}

// HasPlayer reports whether userID is among the joined players.
func (m Match) HasPlayer(userID string) bool {
	for _, id := range m.JoinedPlayers {
		if id == userID {
			return true
		}
	}
	return false
}

type TransactionType string

const (
	TxDeposit      TransactionType = "deposit"
	TxWithdraw     TransactionType = "withdraw"
	TxEntryFee     TransactionType = "entry_fee"
	TxWinning      TransactionType = "winning"
	TxRefund       TransactionType = "refund"
	TxManualAdjust TransactionType = "manual_adjust"
)

type TransactionStatus string

const (
	TxPending  TransactionStatus = "pending"
	TxApproved TransactionStatus = "approved"
	TxRejected TransactionStatus = "rejected"
	TxFailed   TransactionStatus = "failed"
)

type TxMetadata struct {
	Method      string `json:"method,omitempty"`
	TrxID       string `json:"trx_id,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

type Transaction struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	UserEmail string            `json:"user_email,omitempty"`
	Amount    decimal.Decimal   `json:"amount"`
	Type      TransactionType   `json:"type"`
	Status    TransactionStatus `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Note      string            `json:"note,omitempty"`
	Metadata  *TxMetadata       `json:"metadata,omitempty"`
}

type Poster struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
	Link     string `json:"link"`
	YTLink   string `json:"yt_link,omitempty"`
}

type Category struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	BannerURL string `json:"banner_url"`
	Link      string `json:"link,omitempty"`
}

type AppConfig struct {
	AppName                string     `json:"app_name"`
	AppLogoURL             string     `json:"app_logo_url"`
	PrimaryColor           string     `json:"primary_color"`
	HomeBannerURL          string     `json:"home_banner_url"`
	LiveBannerURL          string     `json:"live_banner_url,omitempty"`
	LiveBannerLink         string     `json:"live_banner_link,omitempty"`
	Notice                 string     `json:"notice"`
	LiveAnnouncement       string     `json:"live_announcement"`
	HowToPlayURL           string     `json:"how_to_play_url"`
	BkashTutorialURL       string     `json:"bkash_tutorial_url,omitempty"`
	NagadTutorialURL       string     `json:"nagad_tutorial_url,omitempty"`
	Rules                  string     `json:"rules"`
	TelegramSupportURL     string     `json:"telegram_support_url"`
	TelegramCommunityURL   string     `json:"telegram_community_url"`
	SupportPhone           string     `json:"support_phone"`
	BkashNumber            string     `json:"bkash_number"`
	NagadNumber            string     `json:"nagad_number"`
	IsLeaderboardEnabled   bool       `json:"is_leaderboard_enabled"`
	IsWalletEnabled        bool       `json:"is_wallet_enabled"`
	IsNotificationsEnabled bool       `json:"is_notifications_enabled"`
	IsHistoryEnabled       bool       `json:"is_history_enabled"`
	IsSliderEnabled        bool       `json:"is_slider_enabled"`
	Posters                []Poster   `json:"posters"`
	IsSliderLogoEnabled    bool       `json:"is_slider_logo_enabled"`
	IsSliderAppNameEnabled bool       `json:"is_slider_app_name_enabled"`
	SliderLogoSize         int        `json:"slider_logo_size"`
	LoadingText            string     `json:"loading_text"`
	ShowHomeBalanceCard    bool       `json:"show_home_balance_card"`
	ShowHomeCategories     bool       `json:"show_home_categories"`
	Categories             []Category `json:"categories"`
}
