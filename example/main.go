package main

import (
	log "github.com/sirupsen/logrus"

	collections "github.com/tuannh982/go-collections"
)

func main() {
	logger := log.WithFields(log.Fields{"component": "example"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Level = log.InfoLevel

	inventory := collections.NewHashMapOf(
		collections.Entry[string, int]{Key: "bolt", Value: 40},
		collections.Entry[string, int]{Key: "nut", Value: 80},
		collections.Entry[string, int]{Key: "washer", Value: 120},
	)
	logger.Infof("inventory size: %d", inventory.Size())

	count, err := inventory.Get("bolt")
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infof("bolt: %d", count)

	if _, err := inventory.Get("screw"); err != nil {
		logger.Warnf("screw: %v", err)
	}
	logger.Infof("screw (default): %d", inventory.GetOrElse("screw", func() int { return 0 }))

	// restock everything below 100
	inventory.ForEach(func(part string, count *int) bool {
		if *count < 100 {
			*count += 100
		}
		return true
	})
	for _, part := range collections.SortedKeys(inventory) {
		count := inventory.GetOrElse(part, func() int { return 0 })
		logger.Infof("%s: %d", part, count)
	}

	backup := inventory.Dup()
	inventory.Remove("nut")
	logger.Infof("equal to backup after remove: %v", collections.Equal(inventory, backup))
}
