package store

import (
	"encoding/json"
	"fmt"

	"github.com/willowsc/willow/internal/event"
	"github.com/willowsc/willow/internal/match"
)

// marshalState serializes a match state, log included, for the snapshot row.
func marshalState(state match.State) (string, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("marshal state: %w", err)
	}
	return string(data), nil
}

// unmarshalState deserializes a snapshot row back into a match state.
func unmarshalState(data string) (match.State, error) {
	var state match.State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return match.State{}, fmt.Errorf("unmarshal state: %w", err)
	}
	return state, nil
}

// marshalBall serializes one event for the events payload column.
func marshalBall(ball event.Ball) (string, error) {
	data, err := json.Marshal(ball)
	if err != nil {
		return "", fmt.Errorf("marshal ball: %w", err)
	}
	return string(data), nil
}

// unmarshalBall deserializes an events payload column.
func unmarshalBall(data string) (event.Ball, error) {
	var ball event.Ball
	if err := json.Unmarshal([]byte(data), &ball); err != nil {
		return event.Ball{}, fmt.Errorf("unmarshal ball: %w", err)
	}
	return ball, nil
}
