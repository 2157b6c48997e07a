// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// photo album server handlers, middleware and the client.
//
// Msg* constants are the localized (Japanese) texts written into response
// bodies. Kind* constants are locale independent identifiers sent next to
// them, so programmatic clients never have to match on message text.
package app

// Localized messages.
const (
	MsgUserIDRequired         = "ユーザーIDが必要です"
	MsgUserIDAndTitleRequired = "ユーザーIDとタイトルが必要です"
	MsgUserInfoMissing        = "ユーザー情報が不足しています"
	MsgAuthTokenRequired      = "認証トークンが必要です"
	MsgAuthFailed             = "認証に失敗しました"
	MsgAccessTokenRequired    = "アクセストークンが必要です"
	MsgUserNotFound           = "ユーザーが見つかりません"
	MsgUserInactive           = "このユーザーは無効化されています"
	MsgForbidden              = "他のユーザーのアルバムにはアクセスできません"
	MsgInvalidJSON            = "リクエストの形式が正しくありません"
	MsgAlbumNotFound          = "アルバムが見つかりません"
	MsgInvalidAlbum           = "アルバムの内容が正しくありません"
	MsgServerError            = "サーバーエラーが発生しました"
	MsgNotFound               = "エンドポイントが見つかりません"
	MsgLoggedOut              = "ログアウトしました"
	MsgDefaultAlbumExists     = "デフォルトアルバムは既に存在します"
	MsgStorageQuota           = "ストレージの容量が不足しているか、データが大きすぎます"
	MsgDecodeFailed           = "画像を読み込めませんでした"
	MsgHealthOK               = "OK"
)

// Error kinds.
const (
	KindValidation   = "validation_error"
	KindAuth         = "auth_error"
	KindForbidden    = "forbidden"
	KindNotFound     = "not_found"
	KindProvider     = "provider_error"
	KindStorageQuota = "storage_quota_error"
	KindDecode       = "decode_error"
	KindServer       = "server_error"
)

// Error codes appended to the frontend redirect when the provider login fails.
const (
	CallbackErrNoCode         = "no_code"
	CallbackErrCallbackFailed = "callback_failed"
)
