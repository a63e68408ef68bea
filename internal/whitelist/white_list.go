// Package whitelist 按正则匹配客户端IP, 空名单允许所有地址
package whitelist

import (
	"net"
	"regexp"
	"sync"
)

type List struct {
	mu  sync.RWMutex
	ips map[string]*regexp.Regexp
}

func New(patterns []string) (*List, error) {
	l := &List{ips: map[string]*regexp.Regexp{}}
	for _, p := range patterns {
		if err := l.Register(p); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Register 添加一条IP规则
func (l *List) Register(pattern string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.ips[pattern]; ok {
		return nil
	}
	re, err := regexp.Compile("^(" + pattern + ")$")
	if err != nil {
		return err
	}
	l.ips[pattern] = re
	return nil
}

func (l *List) Remove(pattern string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.ips, pattern)
}

// VerifyIP addr可以带端口
func (l *List) VerifyIP(addr string) bool {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.ips) == 0 {
		return true
	}
	for _, re := range l.ips {
		if re.MatchString(addr) {
			return true
		}
	}
	return false
}
