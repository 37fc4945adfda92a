package seats

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"cineplex/internal/shared/constants"

	"github.com/redis/go-redis/v9"
)

// RedisLocker holds seats with Lua scripts so a multi-seat hold is all-or-nothing
type RedisLocker struct {
	redis  *redis.Client
	prefix string
}

// NewRedisLocker creates a Locker backed by Redis
func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{redis: client, prefix: constants.CACHE_PREFIX + ":"}
}

// Lua script for atomic seat holding
var atomicSeatHold = redis.NewScript(`
-- KEYS[1] = hold_id
-- ARGV[1] = key prefix
-- ARGV[2] = user_id
-- ARGV[3] = showtime_id
-- ARGV[4] = ttl_seconds
-- ARGV[5..N] = seat_ids

local hold_id = KEYS[1]
local prefix = ARGV[1]
local user_id = ARGV[2]
local showtime_id = ARGV[3]
local ttl = tonumber(ARGV[4])

for i = 5, #ARGV do
    local seat_hold_key = prefix .. "seat_hold:" .. showtime_id .. ":" .. ARGV[i]
    if redis.call("EXISTS", seat_hold_key) == 1 then
        return {0, ARGV[i]}
    end
end

local hold_key = prefix .. "hold:" .. hold_id
local hold_seats_key = prefix .. "hold_seats:" .. hold_id
local user_holds_key = prefix .. "user_holds:" .. user_id

redis.call("HSET", hold_key,
    "user_id", user_id,
    "showtime_id", showtime_id,
    "seat_count", #ARGV - 4
)
redis.call("EXPIRE", hold_key, ttl)

for i = 5, #ARGV do
    local seat_hold_key = prefix .. "seat_hold:" .. showtime_id .. ":" .. ARGV[i]
    redis.call("SETEX", seat_hold_key, ttl, user_id .. ":" .. hold_id)
    redis.call("RPUSH", hold_seats_key, ARGV[i])
end
redis.call("EXPIRE", hold_seats_key, ttl)

redis.call("SADD", user_holds_key, hold_id)
if redis.call("TTL", user_holds_key) < ttl then
    redis.call("EXPIRE", user_holds_key, ttl)
end

return {1, "success"}
`)

// Lua script for atomic seat release
var atomicSeatRelease = redis.NewScript(`
-- KEYS[1] = hold_id
-- ARGV[1] = key prefix
local hold_id = KEYS[1]
local prefix = ARGV[1]

local hold_key = prefix .. "hold:" .. hold_id
local hold_seats_key = prefix .. "hold_seats:" .. hold_id

local user_id = redis.call("HGET", hold_key, "user_id")
local showtime_id = redis.call("HGET", hold_key, "showtime_id")
if not user_id or not showtime_id then
    return {0, "hold_not_found"}
end

local seat_ids = redis.call("LRANGE", hold_seats_key, 0, -1)
for i = 1, #seat_ids do
    local seat_hold_key = prefix .. "seat_hold:" .. showtime_id .. ":" .. seat_ids[i]
    if redis.call("GET", seat_hold_key) == user_id .. ":" .. hold_id then
        redis.call("DEL", seat_hold_key)
    end
end

redis.call("SREM", prefix .. "user_holds:" .. user_id, hold_id)
redis.call("DEL", hold_key)
redis.call("DEL", hold_seats_key)

return {1, #seat_ids}
`)

// PreloadScripts loads the Lua scripts so later calls can use EVALSHA
func (r *RedisLocker) PreloadScripts(ctx context.Context) error {
	if err := atomicSeatHold.Load(ctx, r.redis).Err(); err != nil {
		return fmt.Errorf("failed to load seat hold script: %w", err)
	}
	if err := atomicSeatRelease.Load(ctx, r.redis).Err(); err != nil {
		return fmt.Errorf("failed to load seat release script: %w", err)
	}
	return nil
}

func (r *RedisLocker) Acquire(ctx context.Context, hold HoldDetails, ttl time.Duration) error {
	args := []interface{}{
		r.prefix,
		hold.UserID,
		hold.ShowtimeID,
		strconv.Itoa(int(ttl.Seconds())),
	}
	for _, seatID := range hold.SeatIDs {
		args = append(args, seatID)
	}

	result, err := atomicSeatHold.Run(ctx, r.redis, []string{hold.HoldID}, args...).Slice()
	if err != nil {
		return fmt.Errorf("failed to execute atomic seat hold: %w", err)
	}
	if len(result) != 2 {
		return fmt.Errorf("unexpected result format from seat hold script")
	}

	if ok, _ := result[0].(int64); ok == 0 {
		seatID, _ := result[1].(string)
		return &HeldError{SeatID: seatID}
	}
	return nil
}

func (r *RedisLocker) Release(ctx context.Context, holdID string) (int, error) {
	result, err := atomicSeatRelease.Run(ctx, r.redis, []string{holdID}, r.prefix).Slice()
	if err != nil {
		return 0, fmt.Errorf("failed to execute atomic seat release: %w", err)
	}
	if len(result) != 2 {
		return 0, fmt.Errorf("unexpected result format from seat release script")
	}

	if ok, _ := result[0].(int64); ok == 0 {
		return 0, ErrHoldNotFound
	}
	released, _ := result[1].(int64)
	return int(released), nil
}

func (r *RedisLocker) Get(ctx context.Context, holdID string) (*HoldDetails, error) {
	holdKey := r.prefix + "hold:" + holdID

	pipe := r.redis.Pipeline()
	fieldsCmd := pipe.HGetAll(ctx, holdKey)
	seatsCmd := pipe.LRange(ctx, r.prefix+"hold_seats:"+holdID, 0, -1)
	ttlCmd := pipe.TTL(ctx, holdKey)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to read hold: %w", err)
	}

	fields := fieldsCmd.Val()
	if len(fields) == 0 {
		return nil, ErrHoldNotFound
	}
	ttl := ttlCmd.Val()
	if ttl <= 0 {
		return nil, ErrHoldNotFound
	}

	return &HoldDetails{
		HoldID:     holdID,
		UserID:     fields["user_id"],
		ShowtimeID: fields["showtime_id"],
		SeatIDs:    seatsCmd.Val(),
		ExpiresAt:  time.Now().Add(ttl),
		TTL:        int(ttl.Seconds()),
	}, nil
}

func (r *RedisLocker) HeldSeats(ctx context.Context, showtimeID string, seatIDs []string) (map[string]HoldRef, error) {
	held := make(map[string]HoldRef)
	if len(seatIDs) == 0 {
		return held, nil
	}

	keys := make([]string, len(seatIDs))
	for i, seatID := range seatIDs {
		keys[i] = r.prefix + "seat_hold:" + showtimeID + ":" + seatID
	}

	values, err := r.redis.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check seat holds: %w", err)
	}

	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		userID, holdID, found := strings.Cut(s, ":")
		if !found {
			continue
		}
		held[seatIDs[i]] = HoldRef{UserID: userID, HoldID: holdID}
	}
	return held, nil
}

func (r *RedisLocker) UserHolds(ctx context.Context, userID string) ([]string, error) {
	userKey := r.prefix + "user_holds:" + userID
	members, err := r.redis.SMembers(ctx, userKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get user holds: %w", err)
	}

	var live []string
	for _, holdID := range members {
		exists, err := r.redis.Exists(ctx, r.prefix+"hold:"+holdID).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to check hold: %w", err)
		}
		if exists == 1 {
			live = append(live, holdID)
			continue
		}
		r.redis.SRem(ctx, userKey, holdID)
	}
	sort.Strings(live)
	return live, nil
}
