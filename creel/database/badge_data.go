package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/creelhq/creel/creel/database/models"
)

// SeedBadges inserts the badge catalog on first boot. Reruns are no-ops so
// schema initialization stays idempotent; edits to an existing catalog go
// through the admin tooling, not this seed.
func (db *DB) SeedBadges(ctx context.Context) error {
	var badgeCount int
	err := db.pool.QueryRow(ctx, "SELECT COUNT(*) FROM badge_definitions").Scan(&badgeCount)
	if err == nil && badgeCount > 0 {
		slog.Info("Badge catalog already seeded, skipping",
			slog.Int("existing_badges", badgeCount))
		return nil
	}

	slog.Info("Seeding badge catalog...")

	milestones := []models.BadgeDefinition{
		{
			BadgeID:          "first_catch",
			Name:             "First Catch",
			Description:      "Land your first fish",
			Icon:             "badges/first_catch.png",
			Category:         models.BadgeCategoryMilestone,
			Rarity:           models.RarityCommon,
			RequirementKind:  "catch_count",
			RequirementValue: 1,
			Active:           true,
		},
		{
			BadgeID:          "fifty_fish",
			Name:             "Half Century",
			Description:      "Catch 50 fish",
			Icon:             "badges/fifty_fish.png",
			Category:         models.BadgeCategoryMilestone,
			Rarity:           models.RarityCommon,
			RequirementKind:  "catch_count",
			RequirementValue: 50,
			Active:           true,
		},
		{
			BadgeID:          "century_club",
			Name:             "Century Club",
			Description:      "Catch 100 fish",
			Icon:             "badges/century_club.png",
			Category:         models.BadgeCategoryMilestone,
			Rarity:           models.RarityUncommon,
			RequirementKind:  "catch_count",
			RequirementValue: 100,
			Active:           true,
		},
		{
			BadgeID:          "thousand_club",
			Name:             "Thousand Club",
			Description:      "Catch 1,000 fish",
			Icon:             "badges/thousand_club.png",
			Category:         models.BadgeCategoryMilestone,
			Rarity:           models.RarityLegendary,
			RequirementKind:  "catch_count",
			RequirementValue: 1000,
			Active:           true,
		},
		{
			BadgeID:          "frequent_flyer",
			Name:             "Frequent Flyer",
			Description:      "Log 100 trips",
			Icon:             "badges/frequent_flyer.png",
			Category:         models.BadgeCategoryMilestone,
			Rarity:           models.RarityRare,
			RequirementKind:  "trip_count",
			RequirementValue: 100,
			Active:           true,
		},
		{
			BadgeID:          "naturalist",
			Name:             "Naturalist",
			Description:      "Catch 10 different species",
			Icon:             "badges/naturalist.png",
			Category:         models.BadgeCategoryMilestone,
			Rarity:           models.RarityUncommon,
			RequirementKind:  "species_count",
			RequirementValue: 10,
			Active:           true,
		},
		{
			BadgeID:          "explorer",
			Name:             "Explorer",
			Description:      "Fish 15 different locations",
			Icon:             "badges/explorer.png",
			Category:         models.BadgeCategoryMilestone,
			Rarity:           models.RarityRare,
			RequirementKind:  "location_count",
			RequirementValue: 15,
			Active:           true,
		},
		{
			BadgeID:          "quiver_full",
			Name:             "Full Quiver",
			Description:      "Fish with 5 different rods",
			Icon:             "badges/quiver_full.png",
			Category:         models.BadgeCategoryMilestone,
			Rarity:           models.RarityUncommon,
			RequirementKind:  "rod_count",
			RequirementValue: 5,
			Active:           true,
		},
		{
			BadgeID:          "fly_box",
			Name:             "Fly Box",
			Description:      "Catch fish on 20 different flies",
			Icon:             "badges/fly_box.png",
			Category:         models.BadgeCategoryMilestone,
			Rarity:           models.RarityRare,
			RequirementKind:  "fly_count",
			RequirementValue: 20,
			Active:           true,
		},
		{
			BadgeID:          "trophy_hunter",
			Name:             "Trophy Hunter",
			Description:      "Land a trophy-class fish",
			Icon:             "badges/trophy_hunter.png",
			Category:         models.BadgeCategoryMilestone,
			Rarity:           models.RarityEpic,
			RequirementKind:  "stat",
			RequirementField: "trophy_count",
			RequirementValue: 1,
			Active:           true,
		},
		{
			BadgeID:          "freshwater_giant",
			Name:             "Freshwater Giant",
			Description:      "Land a 20-inch freshwater fish",
			Icon:             "badges/freshwater_giant.png",
			Category:         models.BadgeCategoryMilestone,
			Rarity:           models.RarityEpic,
			RequirementKind:  "stat",
			RequirementField: "freshwater_biggest",
			RequirementValue: 20,
			Active:           true,
		},
		{
			BadgeID:          "saltwater_giant",
			Name:             "Saltwater Giant",
			Description:      "Land a 30-inch saltwater fish",
			Icon:             "badges/saltwater_giant.png",
			Category:         models.BadgeCategoryMilestone,
			Rarity:           models.RarityEpic,
			RequirementKind:  "stat",
			RequirementField: "saltwater_biggest",
			RequirementValue: 30,
			Active:           true,
		},
		{
			BadgeID:          "grand_slam",
			Name:             "Grand Slam",
			Description:      "Catch 3 species in a single day",
			Icon:             "badges/grand_slam.png",
			Category:         models.BadgeCategoryMilestone,
			Rarity:           models.RarityEpic,
			RequirementKind:  "day_species_variety",
			RequirementValue: 3,
			Active:           true,
		},
		{
			BadgeID:          "scale_watcher",
			Name:             "Scale Watcher",
			Description:      "Weigh 25 of your catches",
			Icon:             "badges/scale_watcher.png",
			Category:         models.BadgeCategoryMilestone,
			Rarity:           models.RarityUncommon,
			RequirementKind:  "weighed_count",
			RequirementValue: 25,
			Active:           true,
		},
	}

	conditions := []models.BadgeDefinition{
		{
			BadgeID:          "early_bird",
			Name:             "Early Bird",
			Description:      "Catch 10 fish before 7 AM",
			Icon:             "badges/early_bird.png",
			Category:         models.BadgeCategoryConditions,
			Rarity:           models.RarityUncommon,
			RequirementKind:  "time_of_day",
			RequirementValue: 10,
			RequirementMeta:  map[string]interface{}{"time": "early"},
			Active:           true,
		},
		{
			BadgeID:          "night_owl",
			Name:             "Night Owl",
			Description:      "Catch 10 fish after 9 PM",
			Icon:             "badges/night_owl.png",
			Category:         models.BadgeCategoryConditions,
			Rarity:           models.RarityUncommon,
			RequirementKind:  "time_of_day",
			RequirementValue: 10,
			RequirementMeta:  map[string]interface{}{"time": "late"},
			Active:           true,
		},
		{
			BadgeID:          "dawn_to_dusk",
			Name:             "Dawn to Dusk",
			Description:      "Catch fish in all three parts of the day",
			Icon:             "badges/dawn_to_dusk.png",
			Category:         models.BadgeCategoryConditions,
			Rarity:           models.RarityRare,
			RequirementKind:  "time_variety",
			RequirementValue: 3,
			Active:           true,
		},
		{
			BadgeID:          "full_moon_fever",
			Name:             "Full Moon Fever",
			Description:      "Catch 5 fish under a full moon",
			Icon:             "badges/full_moon_fever.png",
			Category:         models.BadgeCategoryConditions,
			Rarity:           models.RarityRare,
			RequirementKind:  "moon_phase",
			RequirementValue: 5,
			RequirementMeta:  map[string]interface{}{"phase": "full"},
			Active:           true,
		},
		{
			BadgeID:          "new_moon_rising",
			Name:             "New Moon Rising",
			Description:      "Catch 5 fish under a new moon",
			Icon:             "badges/new_moon_rising.png",
			Category:         models.BadgeCategoryConditions,
			Rarity:           models.RarityRare,
			RequirementKind:  "moon_phase",
			RequirementValue: 5,
			RequirementMeta:  map[string]interface{}{"phase": "new"},
			Active:           true,
		},
		{
			BadgeID:          "lunar_cycle",
			Name:             "Lunar Cycle",
			Description:      "Catch fish in every moon phase",
			Icon:             "badges/lunar_cycle.png",
			Category:         models.BadgeCategoryConditions,
			Rarity:           models.RarityEpic,
			RequirementKind:  "moon_variety",
			RequirementValue: 4,
			Active:           true,
		},
		{
			BadgeID:          "moonrise_angler",
			Name:             "Moonrise Angler",
			Description:      "Catch 10 fish while the moon is up",
			Icon:             "badges/moonrise_angler.png",
			Category:         models.BadgeCategoryConditions,
			Rarity:           models.RarityUncommon,
			RequirementKind:  "moon_position",
			RequirementValue: 10,
			RequirementMeta:  map[string]interface{}{"position": "up"},
			Active:           true,
		},
		{
			BadgeID:          "rain_dancer",
			Name:             "Rain Dancer",
			Description:      "Catch a fish in the rain",
			Icon:             "badges/rain_dancer.png",
			Category:         models.BadgeCategoryConditions,
			Rarity:           models.RarityCommon,
			RequirementKind:  "weather",
			RequirementMeta:  map[string]interface{}{"weather": "rain"},
			Active:           true,
		},
		{
			BadgeID:          "snow_day",
			Name:             "Snow Day",
			Description:      "Catch a fish in the snow",
			Icon:             "badges/snow_day.png",
			Category:         models.BadgeCategoryConditions,
			Rarity:           models.RarityRare,
			RequirementKind:  "weather",
			RequirementMeta:  map[string]interface{}{"weather": "snow"},
			Active:           true,
		},
		{
			BadgeID:          "storm_chaser",
			Name:             "Storm Chaser",
			Description:      "Catch 25 fish in the rain",
			Icon:             "badges/storm_chaser.png",
			Category:         models.BadgeCategoryConditions,
			Rarity:           models.RarityEpic,
			RequirementKind:  "weather_count",
			RequirementValue: 25,
			RequirementMeta:  map[string]interface{}{"weather": "rain"},
			Active:           true,
		},
		{
			BadgeID:          "wind_warrior",
			Name:             "Wind Warrior",
			Description:      "Catch 15 fish on windy days",
			Icon:             "badges/wind_warrior.png",
			Category:         models.BadgeCategoryConditions,
			Rarity:           models.RarityRare,
			RequirementKind:  "wind_count",
			RequirementValue: 15,
			RequirementMeta:  map[string]interface{}{"wind": "windy"},
			Active:           true,
		},
		{
			BadgeID:          "mud_puncher",
			Name:             "Mud Puncher",
			Description:      "Catch 10 fish in muddy water",
			Icon:             "badges/mud_puncher.png",
			Category:         models.BadgeCategoryConditions,
			Rarity:           models.RarityRare,
			RequirementKind:  "water_clarity_count",
			RequirementValue: 10,
			RequirementMeta:  map[string]interface{}{"clarity": "muddy"},
			Active:           true,
		},
		{
			BadgeID:          "high_water",
			Name:             "High Water",
			Description:      "Catch a fish in high water",
			Icon:             "badges/high_water.png",
			Category:         models.BadgeCategoryConditions,
			Rarity:           models.RarityUncommon,
			RequirementKind:  "water_level",
			RequirementMeta:  map[string]interface{}{"level": "high"},
			Active:           true,
		},
		{
			BadgeID:          "tide_rider",
			Name:             "Tide Rider",
			Description:      "Catch 20 fish on an incoming tide",
			Icon:             "badges/tide_rider.png",
			Category:         models.BadgeCategoryConditions,
			Rarity:           models.RarityRare,
			RequirementKind:  "tide_count",
			RequirementValue: 20,
			RequirementMeta:  map[string]interface{}{"tide": "incoming"},
			Active:           true,
		},
		{
			BadgeID:          "glass_caster",
			Name:             "Glass Caster",
			Description:      "Catch a fish on glassy water",
			Icon:             "badges/glass_caster.png",
			Category:         models.BadgeCategoryConditions,
			Rarity:           models.RarityUncommon,
			RequirementKind:  "surface",
			RequirementMeta:  map[string]interface{}{"surface": "calm"},
			Active:           true,
		},
		{
			BadgeID:          "ice_breaker",
			Name:             "Ice Breaker",
			Description:      "Catch a fish through the ice",
			Icon:             "badges/ice_breaker.png",
			Category:         models.BadgeCategoryConditions,
			Rarity:           models.RarityEpic,
			RequirementKind:  "surface",
			RequirementMeta:  map[string]interface{}{"surface": "ice"},
			Active:           true,
		},
	}

	seasonal := []models.BadgeDefinition{
		{
			BadgeID:          "winter_warrior",
			Name:             "Winter Warrior",
			Description:      "Catch 25 fish in winter",
			Icon:             "badges/winter_warrior.png",
			Category:         models.BadgeCategorySeasonal,
			Rarity:           models.RarityRare,
			RequirementKind:  "season",
			RequirementValue: 25,
			RequirementMeta:  map[string]interface{}{"season": "winter"},
			Active:           true,
		},
		{
			BadgeID:          "spring_fling",
			Name:             "Spring Fling",
			Description:      "Catch 25 fish in spring",
			Icon:             "badges/spring_fling.png",
			Category:         models.BadgeCategorySeasonal,
			Rarity:           models.RarityUncommon,
			RequirementKind:  "season",
			RequirementValue: 25,
			RequirementMeta:  map[string]interface{}{"season": "spring"},
			Active:           true,
		},
		{
			BadgeID:          "four_seasons",
			Name:             "Four Seasons",
			Description:      "Catch fish in all four seasons",
			Icon:             "badges/four_seasons.png",
			Category:         models.BadgeCategorySeasonal,
			Rarity:           models.RarityEpic,
			RequirementKind:  "season_variety",
			RequirementValue: 4,
			Active:           true,
		},
		{
			BadgeID:          "calendar_collector",
			Name:             "Calendar Collector",
			Description:      "Catch fish in every month of the year",
			Icon:             "badges/calendar_collector.png",
			Category:         models.BadgeCategorySeasonal,
			Rarity:           models.RarityLegendary,
			RequirementKind:  "month_variety",
			RequirementValue: 12,
			Active:           true,
		},
		{
			BadgeID:         "new_years_dip",
			Name:            "New Year's Dip",
			Description:     "Catch a fish on January 1st",
			Icon:            "badges/new_years_dip.png",
			Category:        models.BadgeCategorySeasonal,
			Rarity:          models.RarityRare,
			RequirementKind: "calendar_date",
			RequirementMeta: map[string]interface{}{"month": float64(1), "day": float64(1)},
			Active:          true,
		},
		{
			BadgeID:         "independence_catch",
			Name:            "Independence Catch",
			Description:     "Catch a fish on the Fourth of July",
			Icon:            "badges/independence_catch.png",
			Category:        models.BadgeCategorySeasonal,
			Rarity:          models.RarityUncommon,
			RequirementKind: "calendar_date",
			RequirementMeta: map[string]interface{}{"month": float64(7), "day": float64(4)},
			Active:          true,
		},
		{
			BadgeID:         "birthday_fish",
			Name:            "Birthday Fish",
			Description:     "Catch a fish on your birthday",
			Icon:            "badges/birthday_fish.png",
			Category:        models.BadgeCategorySeasonal,
			Rarity:          models.RarityRare,
			RequirementKind: "birthday",
			Active:          true,
		},
	}

	social := []models.BadgeDefinition{
		{
			BadgeID:          "fishing_buddies",
			Name:             "Fishing Buddies",
			Description:      "Fish with friends on 10 days",
			Icon:             "badges/fishing_buddies.png",
			Category:         models.BadgeCategorySocial,
			Rarity:           models.RarityUncommon,
			RequirementKind:  "friend_days",
			RequirementValue: 10,
			Active:           true,
		},
		{
			BadgeID:          "lone_wolf",
			Name:             "Lone Wolf",
			Description:      "Fish alone on 25 days",
			Icon:             "badges/lone_wolf.png",
			Category:         models.BadgeCategorySocial,
			Rarity:           models.RarityUncommon,
			RequirementKind:  "solo_days",
			RequirementValue: 25,
			Active:           true,
		},
		{
			BadgeID:          "party_boat",
			Name:             "Party Boat",
			Description:      "Fish with 4 companions on one trip",
			Icon:             "badges/party_boat.png",
			Category:         models.BadgeCategorySocial,
			Rarity:           models.RarityRare,
			RequirementKind:  "max_companions",
			RequirementValue: 4,
			Active:           true,
		},
		{
			BadgeID:          "social_circle",
			Name:             "Social Circle",
			Description:      "Fish with 10 different companions",
			Icon:             "badges/social_circle.png",
			Category:         models.BadgeCategorySocial,
			Rarity:           models.RarityEpic,
			RequirementKind:  "companion_variety",
			RequirementValue: 10,
			Active:           true,
		},
		{
			BadgeID:          "local_legend",
			Name:             "Local Legend",
			Description:      "Reach 50 followers",
			Icon:             "badges/local_legend.png",
			Category:         models.BadgeCategorySocial,
			Rarity:           models.RarityEpic,
			RequirementKind:  "followers",
			RequirementValue: 50,
			Active:           true,
		},
	}

	consistency := []models.BadgeDefinition{
		{
			BadgeID:          "week_streak",
			Name:             "Seven Straight",
			Description:      "Fish 7 days in a row",
			Icon:             "badges/week_streak.png",
			Category:         models.BadgeCategoryConsistency,
			Rarity:           models.RarityRare,
			RequirementKind:  "streak",
			RequirementValue: 7,
			Active:           true,
		},
		{
			BadgeID:          "hot_streak",
			Name:             "Hot Streak",
			Description:      "Catch fish 5 days in a row",
			Icon:             "badges/hot_streak.png",
			Category:         models.BadgeCategoryConsistency,
			Rarity:           models.RarityRare,
			RequirementKind:  "catch_streak",
			RequirementValue: 5,
			Active:           true,
		},
		{
			BadgeID:          "never_skunked",
			Name:             "Never Skunked",
			Description:      "Go 10 straight fishing days without a skunk",
			Icon:             "badges/never_skunked.png",
			Category:         models.BadgeCategoryConsistency,
			Rarity:           models.RarityEpic,
			RequirementKind:  "no_skunk_streak",
			RequirementValue: 10,
			Active:           true,
		},
		{
			BadgeID:          "weekly_regular",
			Name:             "Weekly Regular",
			Description:      "Fish every week for 8 straight weeks",
			Icon:             "badges/weekly_regular.png",
			Category:         models.BadgeCategoryConsistency,
			Rarity:           models.RarityRare,
			RequirementKind:  "weekly_streak",
			RequirementValue: 8,
			Active:           true,
		},
		{
			BadgeID:          "year_rounder",
			Name:             "Year Rounder",
			Description:      "Fish in 12 consecutive months",
			Icon:             "badges/year_rounder.png",
			Category:         models.BadgeCategoryConsistency,
			Rarity:           models.RarityLegendary,
			RequirementKind:  "consecutive_months",
			RequirementValue: 12,
			Active:           true,
		},
		{
			BadgeID:          "weekend_warrior",
			Name:             "Weekend Warrior",
			Description:      "Fish 6 weekends in a row",
			Icon:             "badges/weekend_warrior.png",
			Category:         models.BadgeCategoryConsistency,
			Rarity:           models.RarityRare,
			RequirementKind:  "weekend_streak",
			RequirementValue: 6,
			Active:           true,
		},
		{
			BadgeID:          "hooky_player",
			Name:             "Hooky Player",
			Description:      "Fish on 20 weekdays",
			Icon:             "badges/hooky_player.png",
			Category:         models.BadgeCategoryConsistency,
			Rarity:           models.RarityUncommon,
			RequirementKind:  "weekday_count",
			RequirementValue: 20,
			Active:           true,
		},
		{
			BadgeID:          "old_timer",
			Name:             "Old Timer",
			Description:      "Keep your log for a full year",
			Icon:             "badges/old_timer.png",
			Category:         models.BadgeCategoryConsistency,
			Rarity:           models.RarityRare,
			RequirementKind:  "account_age",
			RequirementValue: 365,
			Active:           true,
		},
	}

	challenges := []models.BadgeDefinition{
		{
			BadgeID:          "one_fly_wonder",
			Name:             "One Fly Wonder",
			Description:      "Catch 50 fish on a single fly pattern",
			Icon:             "badges/one_fly_wonder.png",
			Category:         models.BadgeCategoryChallenge,
			Rarity:           models.RarityEpic,
			RequirementKind:  "challenge",
			RequirementField: "one_fly_mastery",
			RequirementValue: 50,
			Active:           true,
		},
		{
			BadgeID:          "rod_loyalist",
			Name:             "Rod Loyalist",
			Description:      "Catch 100 fish on one rod",
			Icon:             "badges/rod_loyalist.png",
			Category:         models.BadgeCategoryChallenge,
			Rarity:           models.RarityRare,
			RequirementKind:  "challenge",
			RequirementField: "one_rod_mastery",
			RequirementValue: 100,
			Active:           true,
		},
		{
			BadgeID:          "home_waters",
			Name:             "Home Waters",
			Description:      "Fish the same spot 25 times",
			Icon:             "badges/home_waters.png",
			Category:         models.BadgeCategoryChallenge,
			Rarity:           models.RarityRare,
			RequirementKind:  "challenge",
			RequirementField: "home_waters",
			RequirementValue: 25,
			Active:           true,
		},
		{
			BadgeID:          "record_breaker",
			Name:             "Record Breaker",
			Description:      "Beat your personal best 5 times",
			Icon:             "badges/record_breaker.png",
			Category:         models.BadgeCategoryChallenge,
			Rarity:           models.RarityEpic,
			RequirementKind:  "challenge",
			RequirementField: "personal_best",
			RequirementValue: 5,
			Active:           true,
		},
		{
			BadgeID:          "sunup_to_sundown",
			Name:             "Sunup to Sundown",
			Description:      "Fish morning, afternoon, and evening in one day",
			Icon:             "badges/sunup_to_sundown.png",
			Category:         models.BadgeCategoryChallenge,
			Rarity:           models.RarityRare,
			RequirementKind:  "challenge",
			RequirementField: "full_day",
			Active:           true,
		},
		{
			BadgeID:          "comeback_kid",
			Name:             "Comeback Kid",
			Description:      "Catch fish the day after getting skunked",
			Icon:             "badges/comeback_kid.png",
			Category:         models.BadgeCategoryChallenge,
			Rarity:           models.RarityUncommon,
			RequirementKind:  "challenge",
			RequirementField: "comeback",
			Active:           true,
		},
		{
			BadgeID:          "redemption_song",
			Name:             "Redemption",
			Description:      "Land a trophy the day after getting skunked",
			Icon:             "badges/redemption_song.png",
			Category:         models.BadgeCategoryChallenge,
			Rarity:           models.RarityLegendary,
			RequirementKind:  "challenge",
			RequirementField: "redemption",
			Active:           true,
		},
		{
			BadgeID:          "weather_watcher",
			Name:             "Weather Watcher",
			Description:      "Log the weather on 50 trips",
			Icon:             "badges/weather_watcher.png",
			Category:         models.BadgeCategoryChallenge,
			Rarity:           models.RarityUncommon,
			RequirementKind:  "challenge",
			RequirementField: "weather_logger",
			RequirementValue: 50,
			Active:           true,
		},
		{
			BadgeID:          "winter_morning_moon",
			Name:             "Winter Morning Moon",
			Description:      "Catch a fish on a winter morning under a full moon",
			Icon:             "badges/winter_morning_moon.png",
			Category:         models.BadgeCategoryChallenge,
			Rarity:           models.RarityLegendary,
			RequirementKind:  "combo",
			RequirementMeta:  map[string]interface{}{"time": "morning", "phase": "full", "season": "winter"},
			Active:           true,
		},
		{
			BadgeID:         "heavy_rain",
			Name:            "Heavy Rain",
			Description:     "Land an 18-inch fish in the rain",
			Icon:            "badges/heavy_rain.png",
			Category:        models.BadgeCategoryChallenge,
			Rarity:          models.RarityEpic,
			RequirementKind: "combo",
			RequirementMeta: map[string]interface{}{"weather": "rain", "min_size": float64(18)},
			Active:          true,
		},
	}

	groups := [][]models.BadgeDefinition{milestones, conditions, seasonal, social, consistency, challenges}
	total := 0
	for _, group := range groups {
		for i := range group {
			if _, err := db.bunDB.NewInsert().
				Model(&group[i]).
				On("CONFLICT (badge_id) DO NOTHING").
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to seed badge %s: %w", group[i].BadgeID, err)
			}
			total++
		}
	}

	slog.Info("Badge catalog seeded",
		slog.String("type", "db"),
		slog.Int("badges", total))
	return nil
}
