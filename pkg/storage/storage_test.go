package storage

import "artliving/pkg/utils"

func testConfig(driver string) *utils.Config {
	return &utils.Config{Storage: utils.StorageConfig{Driver: driver}}
}
