package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultAppConfig returns the built-in branding and feature defaults.
// Persisted overrides are overlaid on top of this at startup.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		AppName:              "EliteZone",
		AppLogoURL:           "https://cdn-icons-png.flaticon.com/512/3665/3665923.png",
		PrimaryColor:         "#6366f1",
		HomeBannerURL:        "https://images.unsplash.com/photo-1542751371-adc38448a05e?auto=format&fit=crop&q=80&w=800",
		Notice:               "Welcome to EliteZone! Join the daily tournaments and win exciting prizes.",
		LiveAnnouncement:     "Live tournaments have started. Join now and win exciting prizes.",
		HowToPlayURL:         "https://youtube.com",
		BkashTutorialURL:     "https://youtube.com",
		NagadTutorialURL:     "https://youtube.com",
		Rules:                "1. No hacking or cheating.\n2. Emulators are prohibited.\n3. Room ID and password are shared 15 minutes before the match.\n4. Teaming leads to a permanent ban.\n5. Use your real game ID.",
		TelegramSupportURL:   "https://t.me/your_support",
		TelegramCommunityURL: "https://t.me/your_community",
		SupportPhone:         "+880123456789",
		BkashNumber:          "017XXXXXXXX",
		NagadNumber:          "018XXXXXXXX",
		IsLeaderboardEnabled:   true,
		IsWalletEnabled:        true,
		IsNotificationsEnabled: true,
		IsHistoryEnabled:       true,
		IsSliderEnabled:        false,
		Posters: []Poster{
			{ID: "p1", ImageURL: "https://images.unsplash.com/photo-1542751371-adc38448a05e?auto=format&fit=crop&q=80&w=800"},
			{ID: "p2", ImageURL: "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?auto=format&fit=crop&q=80&w=800"},
			{ID: "p3", ImageURL: "https://images.unsplash.com/photo-1511512578047-dfb367046420?auto=format&fit=crop&q=80&w=800"},
		},
		IsSliderLogoEnabled:    true,
		IsSliderAppNameEnabled: true,
		SliderLogoSize:         64,
		LoadingText:            "Loading assets...",
		ShowHomeBalanceCard:    true,
		ShowHomeCategories:     true,
		Categories: []Category{
			{ID: "cat_1", Label: "BR DUO MATCH", BannerURL: "https://images.unsplash.com/photo-1542751371-adc38448a05e?auto=format&fit=crop&q=80&w=400"},
			{ID: "cat_2", Label: "BR SOLO MATCH", BannerURL: "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?auto=format&fit=crop&q=80&w=400"},
			{ID: "cat_3", Label: "CLASH SQUAD", BannerURL: "https://images.unsplash.com/photo-1511512578047-dfb367046420?auto=format&fit=crop&q=80&w=400"},
			{ID: "cat_4", Label: "BR SQUAD MATCH", BannerURL: "https://images.unsplash.com/photo-1614027164847-1b2809eb7b9c?auto=format&fit=crop&q=80&w=400"},
		},
	}
}

// SeedMatches are the matches installed on first launch, before any admin
// has created one.
func SeedMatches(now time.Time) []Match {
	return []Match{
		{
			ID:            "m1",
			Title:         "Elite Duo Warmup",
			EntryFee:      decimal.NewFromInt(10),
			Prize:         decimal.NewFromInt(450),
			PerKill:       decimal.NewFromInt(5),
			Status:        MatchUpcoming,
			JoinedPlayers: []string{},
			Registrations: []Registration{},
			MaxPlayers:    48,
			StartTime:     now.Add(30 * time.Minute),
			Map:           "Bermuda",
			Mode:          "DUO",
			ImageURL:      "https://images.unsplash.com/photo-1542751371-adc38448a05e?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:            "m2",
			Title:         "Solo King Scrims",
			EntryFee:      decimal.NewFromInt(50),
			Prize:         decimal.NewFromInt(2500),
			PerKill:       decimal.NewFromInt(10),
			Status:        MatchUpcoming,
			JoinedPlayers: []string{},
			Registrations: []Registration{},
			MaxPlayers:    48,
			StartTime:     now.Add(2 * time.Hour),
			Map:           "Purgatory",
			Mode:          "SOLO",
			ImageURL:      "https://images.unsplash.com/photo-1542751371-adc38448a05e?auto=format&fit=crop&q=80&w=800",
		},
	}
}

// SeedUsers holds the demo account present on a fresh install.
func SeedUsers(now time.Time) []User {
	return []User{
		{
			ID:        "u1",
			Email:     "gamer@elitezone.com",
			Password:  "123",
			Wallet:    decimal.NewFromInt(50),
			FullName:  "Elite Gamer",
			GameID:    "123456789",
			CreatedAt: now,
		},
	}
}
