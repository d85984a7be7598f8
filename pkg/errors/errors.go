package errors

import "errors"

// ErrInvalidResetToken 密码重置 Token 无效、已使用或已过期。
// 三种情况统一为一个错误，避免向调用方泄露 Token 状态。
var ErrInvalidResetToken = errors.New("invalid or expired token")
