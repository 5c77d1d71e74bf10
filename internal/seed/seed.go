package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/slumberlog/sleep-diary/internal/domain"
	"github.com/slumberlog/sleep-diary/pkg/clock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const seededDays = 40

// demoPassword is the login password for every seeded account.
const demoPassword = "sleepdiary-demo"

// Run seeds the database with sample users and sleep records. Safe to call
// multiple times.
func Run(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.Session{}, &domain.SleepRecord{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Dana Demo", Email: "dana@sleep-diary.dev"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "Niels Nacht", Email: "niels@sleep-diary.dev"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Name: "Aiko Asa", Email: "aiko@sleep-diary.dev"},
	}

	for i := range users {
		users[i].PasswordHash = string(hash)
		if err := db.Where("id = ?", users[i].ID).FirstOrCreate(&users[i]).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", users[i].ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedSleepRecordsForUser(db, user, rng); err != nil {
			return err
		}
	}

	logger.Info("seed completed", zap.Int("users", len(users)), zap.Int("days", seededDays))
	return nil
}

func seedSleepRecordsForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 1; i <= seededDays; i++ {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")

		// Bedtime between 21:30 and 00:30, sleep length 6 to 9 hours.
		bedMinutes := (21*60 + 30 + rng.Intn(180)) % clock.MinutesPerDay
		wakeMinutes := (bedMinutes + 360 + rng.Intn(180)) % clock.MinutesPerDay

		sleepTime := clock.Format(bedMinutes)
		wakeTime := clock.Format(wakeMinutes)
		duration, err := clock.Duration(sleepTime, wakeTime)
		if err != nil {
			return fmt.Errorf("failed to compute seeded duration: %w", err)
		}

		record := domain.SleepRecord{
			UserID:    user.ID,
			Date:      date,
			SleepTime: sleepTime,
			WakeTime:  wakeTime,
			Duration:  duration,
			Quality:   1 + rng.Intn(5),
		}

		err = db.Where("user_id = ? AND date = ?", user.ID, date).
			FirstOrCreate(&record).Error
		if err != nil {
			return fmt.Errorf("failed to create sleep record for %s: %w", date, err)
		}
	}
	return nil
}
