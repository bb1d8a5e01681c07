package cache

import (
	"encoding/hex"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

const (
	KeyArenas = "arenas"

	PrefixCourts       = "courts:"
	PrefixSchedules    = "schedules:"
	PrefixReservations = "reservations:"
	PrefixMe           = "me:"
	PrefixOwner        = "owner:"
	PrefixOwnerArenas  = "owner:arenas:"
	PrefixOwnerCourts  = "owner:courts:"
	PrefixRevoked      = "revoked:"
)

// ViewerKey identifica o usuário no cache sem guardar o token em claro.
func ViewerKey(token string) string {
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func id(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func CourtsKey(arenaID uint) string        { return PrefixCourts + id(arenaID) }
func SchedulesKey(courtID uint) string     { return PrefixSchedules + id(courtID) }
func ReservationsKey(viewer string) string { return PrefixReservations + viewer }
func MeKey(viewer string) string           { return PrefixMe + viewer }
func OwnerArenasKey(viewer string) string  { return PrefixOwnerArenas + viewer }
func RevokedKey(viewer string) string      { return PrefixRevoked + viewer }

// OwnerCourtsPrefix cobre as listas da arena de todos os usuários.
func OwnerCourtsPrefix(arenaID uint) string { return PrefixOwnerCourts + id(arenaID) + ":" }

// OwnerCourtsKey inclui o viewer: a resposta depende da permissão de quem pede.
func OwnerCourtsKey(arenaID uint, viewer string) string {
	return OwnerCourtsPrefix(arenaID) + viewer
}

// ViewerKeys são as chaves ligadas a um token específico.
func ViewerKeys(viewer string) []string {
	return []string{
		ReservationsKey(viewer),
		MeKey(viewer),
		OwnerArenasKey(viewer),
	}
}
