package response

import "github.com/Sommysab/auth-service/internal/core/domain/user"

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (t *TokenPair) FromDomainTokenPair(pair user.TokenPair) {
	t.Access = string(pair.Access)
	t.Refresh = string(pair.Refresh)
}
