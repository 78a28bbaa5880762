package types

import (
	"encoding/binary"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "comet"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_" + ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

var (
	// PoolKeyPrefix is the prefix for pool store keys
	PoolKeyPrefix = []byte{0x01, 0x01}

	// PoolCountKey is the key for the next pool ID counter
	PoolCountKey = []byte{0x01, 0x02}

	// RecordKeyPrefix is the prefix for per-token record store keys
	RecordKeyPrefix = []byte{0x01, 0x03}

	// ShareBalanceKeyPrefix is the prefix for pool share balances
	ShareBalanceKeyPrefix = []byte{0x01, 0x04}

	// AllowanceKeyPrefix is the prefix for pool share allowances
	AllowanceKeyPrefix = []byte{0x01, 0x05}
)

func poolIDBytes(poolID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	return bz
}

// PoolKey returns the store key for a pool
func PoolKey(poolID uint64) []byte {
	return append(PoolKeyPrefix, poolIDBytes(poolID)...)
}

// RecordKey returns the store key for a token record of a pool
func RecordKey(poolID uint64, denom string) []byte {
	key := append(RecordKeyPrefix, poolIDBytes(poolID)...)
	return append(key, []byte(denom)...)
}

// RecordPoolPrefix returns the store prefix covering all records of a pool
func RecordPoolPrefix(poolID uint64) []byte {
	return append(RecordKeyPrefix, poolIDBytes(poolID)...)
}

// ShareBalanceKey returns the store key for an address' share balance
func ShareBalanceKey(poolID uint64, addr sdk.AccAddress) []byte {
	key := append(ShareBalanceKeyPrefix, poolIDBytes(poolID)...)
	return append(key, addr.Bytes()...)
}

// ShareBalancePoolPrefix returns the store prefix covering all share balances
// of a pool
func ShareBalancePoolPrefix(poolID uint64) []byte {
	return append(ShareBalanceKeyPrefix, poolIDBytes(poolID)...)
}

// AllowanceKey returns the store key for a share allowance. The owner address
// is length-prefixed so (owner, spender) pairs cannot collide.
func AllowanceKey(poolID uint64, owner, spender sdk.AccAddress) []byte {
	key := append(AllowanceKeyPrefix, poolIDBytes(poolID)...)
	key = append(key, byte(len(owner)))
	key = append(key, owner.Bytes()...)
	return append(key, spender.Bytes()...)
}

// PoolAddress derives the account address holding a pool's underlying
// balances. Each pool owns its own address so reconciliation against the
// chain balance (gulp) never observes another pool's funds.
func PoolAddress(poolID uint64) sdk.AccAddress {
	return sdk.AccAddress(address.Module(ModuleName, []byte(fmt.Sprintf("pool/%d", poolID))))
}
