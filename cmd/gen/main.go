package main

import (
	"athan/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.DailyPrayerTimesModel{},
		model.PushTokenModel{},
		model.NotificationSentLogModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
