package service

import "errors"

// 服务层哨兵错误，controller 据此映射 HTTP 状态码
var (
	ErrInvalidCredentials = errors.New("sai thông tin đăng nhập")
	ErrUsernameExists     = errors.New("tên đăng nhập đã tồn tại")
	ErrUserNotFound       = errors.New("người dùng không tồn tại")
	ErrStoreNotFound      = errors.New("cửa hàng không tồn tại")
	ErrProductNotFound    = errors.New("sản phẩm không tồn tại")
	ErrOrderNotFound      = errors.New("đơn hàng không tồn tại")
	ErrInventoryNotFound  = errors.New("tồn kho không tồn tại")
)
