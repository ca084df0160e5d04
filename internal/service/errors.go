package service

import "errors"

var (
	ErrSynthesis    = errors.New("qr synthesis failed")
	ErrStorageWrite = errors.New("image write failed")
	ErrPersistence  = errors.New("record persistence failed")
)
