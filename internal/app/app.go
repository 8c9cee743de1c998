package app

import (
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/talkincode/foodking/config"
	"github.com/talkincode/foodking/internal/catalog"
	"github.com/talkincode/foodking/internal/favorites"
	"github.com/talkincode/foodking/internal/orderapi"
	"github.com/talkincode/foodking/internal/orders"
	"github.com/talkincode/foodking/internal/session"
	"github.com/talkincode/foodking/internal/store"
	"github.com/talkincode/foodking/pkg/ids"
)

// StoreFilename is the bbolt file created under the workdir.
const StoreFilename = "foodking.db"

type Application struct {
	appConfig *config.AppConfig
	dataStore *store.Store
	idgen     ids.Generator
	sched     *cron.Cron
	bus       EventBus.Bus

	catalogRepo   *catalog.BoltRepository
	favoritesRepo *favorites.BoltRepository
	ordersRepo    *orders.BoltRepository
	remote        *orderapi.Client
	cartSession   *session.Session
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider    = (*Application)(nil)
	_ StoreProvider     = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ BusProvider       = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Store() *store.Store {
	return a.dataStore
}

// OverrideStore replaces the application's store handle (used in tests).
func (a *Application) OverrideStore(s *store.Store) {
	a.dataStore = s
}

func (a *Application) Init() error {
	cfg := a.appConfig
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger()

	if err := os.MkdirAll(cfg.System.Workdir, 0755); err != nil {
		return err
	}
	a.dataStore, err = store.Open(filepath.Join(cfg.System.Workdir, StoreFilename))
	if err != nil {
		return err
	}
	zap.S().Infof("store opened under %s", cfg.System.Workdir)

	a.idgen, err = ids.NewSnowflake(cfg.System.NodeID)
	if err != nil {
		return err
	}

	a.bus = EventBus.New()
	a.catalogRepo = catalog.NewBoltRepository(a.dataStore, a.idgen)
	a.favoritesRepo = favorites.NewBoltRepository(a.dataStore, a.bus)
	a.ordersRepo = orders.NewBoltRepository(a.dataStore, a.idgen)

	if cfg.OrderAPI.Endpoint != "" {
		a.remote = orderapi.New(cfg.OrderAPI.Endpoint,
			time.Duration(cfg.OrderAPI.Timeout)*time.Second)
		zap.S().Infof("remote order API enabled: %s", cfg.OrderAPI.Endpoint)
	}

	a.cartSession = session.New(a.ordersRepo, a.remote, a.bus)

	a.initNotifier()
	a.initJob()
	return nil
}

// initLogger configures zap the way the settings mode asks, with
// optional rotating file output.
func (a *Application) initLogger() {
	cfg := a.appConfig
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}
	zap.ReplaceGlobals(logger)
}

// Catalog returns the dish/category repository.
func (a *Application) Catalog() catalog.Repository {
	return a.catalogRepo
}

// Favorites returns the favorites repository.
func (a *Application) Favorites() favorites.Repository {
	return a.favoritesRepo
}

// Orders returns the order repository.
func (a *Application) Orders() orders.Repository {
	return a.ordersRepo
}

// Session returns the single active cart session.
func (a *Application) Session() *session.Session {
	return a.cartSession
}

// Remote returns the order API client, nil when disabled.
func (a *Application) Remote() *orderapi.Client {
	return a.remote
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

// Bus returns the application event bus
func (a *Application) Bus() EventBus.Bus {
	return a.bus
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.dataStore != nil {
		_ = a.dataStore.Close()
	}
	_ = zap.L().Sync()
}
