package domain

import "errors"

var (
	ErrFormat            = errors.New("malformed input")
	ErrUnknownField      = errors.New("unknown record field")
	ErrInvalidRecordID   = errors.New("invalid record id")
	ErrIncompleteRecord  = errors.New("incomplete record")
	ErrRecordNotFound    = errors.New("record not found")
	ErrRemoteRead        = errors.New("remote store read failed")
	ErrRemoteWrite       = errors.New("remote store write failed")
	ErrNoSession         = errors.New("no conversation in progress")
	ErrNoPendingDeletion = errors.New("no pending deletion")
	ErrNothingToExport   = errors.New("nothing to export")
)
