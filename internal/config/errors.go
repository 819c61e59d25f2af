package config

import "errors"

// 配置相关错误
var (
	ErrInvalidPort       = errors.New("服务器端口无效")
	ErrInvalidPingPeriod = errors.New("心跳间隔必须小于Pong等待时间")
	ErrInvalidSession    = errors.New("会话超时配置不能为负数")
	ErrEmptyTableName    = errors.New("关键词表名称不能为空")
	ErrDuplicateTable    = errors.New("关键词表名称重复")
	ErrEmptyPattern      = errors.New("关键词不能为空")
	ErrEmptyResponse     = errors.New("回复内容不能为空")
	ErrUnknownTable      = errors.New("关键词表不存在")
)
