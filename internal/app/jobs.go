package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/talkincode/foodking/internal/domain"
	"github.com/talkincode/foodking/internal/favorites"
	"github.com/talkincode/foodking/internal/session"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, err := time.LoadLocation(a.appConfig.System.Location)
	if err != nil {
		loc = time.Local
	}
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	if _, err = a.sched.AddFunc("@every 15m", a.SchedAutoBackup); err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedAutoBackup writes a rolling backup of the whole store. Skipped
// when the autoSave setting is off.
func (a *Application) SchedAutoBackup() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	cfg, err := a.dataStore.Settings()
	if err != nil {
		zap.L().Warn("auto backup: settings unreadable", zap.Error(err))
		return
	}
	if !cfg.AutoSave {
		return
	}

	backup, err := a.dataStore.CreateBackup()
	if err != nil {
		zap.L().Warn("auto backup failed", zap.Error(err))
		return
	}
	if err := a.dataStore.SaveBackup(backup); err != nil {
		zap.L().Warn("auto backup write failed", zap.Error(err))
		return
	}
	zap.L().Info("auto backup written", zap.Time("at", backup.Timestamp))
}

// initNotifier subscribes a log notifier for placed orders when the
// notifications setting is on.
func (a *Application) initNotifier() {
	cfg, err := a.dataStore.Settings()
	if err != nil || !cfg.Notifications {
		return
	}
	err = a.bus.Subscribe(session.TopicOrderPlaced, func(order domain.Order) {
		zap.L().Info("order placed",
			zap.Int64("id", order.ID),
			zap.String("customer", order.Customer),
			zap.String("table", order.Table),
			zap.Float64("total", order.Revenue()))
	})
	if err != nil {
		zap.S().Errorf("notifier subscribe error %s", err.Error())
	}

	err = a.bus.Subscribe(favorites.TopicFavoriteAdded, func(entry domain.FavoriteEntry) {
		zap.L().Info("favorite added",
			zap.Int64("id", entry.ID),
			zap.String("name", entry.Name))
	})
	if err != nil {
		zap.S().Errorf("notifier subscribe error %s", err.Error())
	}
}
