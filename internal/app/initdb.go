package app

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/internal/settings"
	"github.com/tripveda/tripveda/pkg/common"
)

func (a *Application) checkSuper() {
	const superUsername = "admin"
	const defaultPassword = "tripveda"

	hashedPassword, err := common.HashPassword(defaultPassword)
	if err != nil {
		zap.L().Error("failed to hash default password", zap.Error(err))
		return
	}

	var operator domain.SysOpr
	err = a.gormDB.Where("username = ?", superUsername).First(&operator).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := a.gormDB.Create(&domain.SysOpr{
			ID:        common.UUIDint64(),
			Realname:  "administrator",
			Mobile:    "0000",
			Email:     "N/A",
			Username:  superUsername,
			Password:  hashedPassword,
			Level:     "super",
			Status:    common.ENABLED,
			Remark:    "super",
			LastLogin: time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to create default super admin", zap.Error(err))
		} else {
			zap.L().Info("initialized default super admin account", zap.String("username", superUsername))
		}
		return
	case err != nil:
		zap.L().Error("failed to query super admin", zap.Error(err))
		return
	}

	resetPassword := strings.TrimSpace(operator.Password) == ""
	resetLevel := !strings.EqualFold(operator.Level, "super")
	resetStatus := !strings.EqualFold(operator.Status, common.ENABLED)

	if !resetPassword && !resetLevel && !resetStatus {
		return
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if resetPassword {
		updates["password"] = hashedPassword
	}
	if resetLevel {
		updates["level"] = "super"
	}
	if resetStatus {
		updates["status"] = common.ENABLED
	}

	if err := a.gormDB.Model(&domain.SysOpr{}).Where("id = ?", operator.ID).Updates(updates).Error; err != nil {
		zap.L().Error("failed to repair super admin account", zap.Error(err))
		return
	}

	zap.L().Warn("repaired default super admin account",
		zap.String("username", superUsername),
		zap.Bool("passwordReset", resetPassword),
		zap.Bool("levelReset", resetLevel),
		zap.Bool("statusEnabled", resetStatus))
}

// checkSettings seeds a sys_config row for every known site setting so the
// back-office settings page always has a complete list to edit.
func (a *Application) checkSettings() {
	for name, value := range settings.Defaults {
		var count int64
		err := a.gormDB.Model(&domain.SysConfig{}).
			Where("type = ? and name = ?", settings.TypeSite, name).
			Count(&count).Error
		if err != nil {
			zap.L().Error("failed to query setting", zap.String("name", name), zap.Error(err))
			continue
		}
		if count > 0 {
			continue
		}
		if err := a.gormDB.Create(&domain.SysConfig{
			Type:  settings.TypeSite,
			Name:  name,
			Value: value,
		}).Error; err != nil {
			zap.L().Error("failed to seed setting", zap.String("name", name), zap.Error(err))
		}
	}
	_ = a.sets.Refresh()
}

// checkVehicles seeds the taxi fleet so a fresh install shows a usable
// booking page before the back office fills in real vehicles.
func (a *Application) checkVehicles() {
	var count int64
	if err := a.gormDB.Model(&domain.Vehicle{}).Count(&count).Error; err != nil {
		zap.L().Error("failed to query vehicles", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	seed := []domain.Vehicle{
		{ID: common.UUIDint64(), Name: "Swift Dzire", Type: "sedan", Seats: 4, PricePerKm: 12, IsActive: true},
		{ID: common.UUIDint64(), Name: "Toyota Innova", Type: "suv", Seats: 6, PricePerKm: 18, IsActive: true},
		{ID: common.UUIDint64(), Name: "Tempo Traveller", Type: "minibus", Seats: 12, PricePerKm: 26, IsActive: true},
	}
	for i := range seed {
		if err := a.gormDB.Create(&seed[i]).Error; err != nil {
			zap.L().Error("failed to seed vehicle", zap.String("name", seed[i].Name), zap.Error(err))
		}
	}
	zap.L().Info("seeded default taxi fleet", zap.Int("vehicles", len(seed)))
}
