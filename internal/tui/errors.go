// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

var (
	ErrUserQuit            = errors.New("вышел из программы")
	errWrongMasterPassword = errors.New("неверный мастер-пароль")
)

// humanizeError turns service errors into messages for the status line.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, errWrongMasterPassword):
		return "Неверный мастер-пароль: ни одну запись не удалось расшифровать"
	case errors.Is(err, service.ErrEmptyMasterPassword):
		return "Введите мастер-пароль"
	case errors.Is(err, validators.ErrEmptyTitle):
		return "Нужно название"
	case errors.Is(err, validators.ErrTitleTooLong):
		return "Название слишком длинное"
	case errors.Is(err, validators.ErrEmptyPassword):
		return "Нужен пароль"
	case errors.Is(err, validators.ErrInvalidURL):
		return "Некорректный URL"
	case errors.Is(err, service.ErrUserMismatch):
		return "Сессия принадлежит другому пользователю"
	case errors.Is(err, service.ErrVaultLocked):
		return "Хранилище заблокировано"
	case errors.Is(err, crypto.ErrRandomSourceUnavailable):
		return "Источник случайных чисел недоступен, попробуйте позже"
	case errors.Is(err, crypto.ErrDecryption):
		return "Запись не удалось расшифровать"
	case errors.Is(err, store.ErrVaultItemNotFound):
		return "Запись не найдена"
	case errors.Is(err, generator.ErrNoCharset):
		return "Выберите хотя бы один набор символов"
	}
	return err.Error()
}
