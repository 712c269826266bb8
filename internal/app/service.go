package app

import (
	"hooksync/internal/adapters"
	"hooksync/internal/ports"
)

type Service struct {
	LockReader    ports.LockReaderPort
	MappingSource ports.MappingSourcePort
	HookConfig    ports.HookConfigPort
}

func NewService() Service {
	return Service{
		LockReader:    adapters.NewPoetryLockAdapter(),
		MappingSource: adapters.NewMappingFileAdapter(),
		HookConfig:    adapters.NewPreCommitConfigAdapter(),
	}
}
