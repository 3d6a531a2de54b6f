package repository

import (
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// sentCommand pops the oldest command the mock client sent.
func sentCommand(mt *mtest.T) bson.Raw {
	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt, "no command was sent")
	return evt.Command
}

func lookup(mt *mtest.T, cmd bson.Raw, path ...string) bson.RawValue {
	v, err := cmd.LookupErr(path...)
	require.NoError(mt, err, "%v not found in %s", path, cmd)
	return v
}

func hasField(cmd bson.Raw, path ...string) bool {
	_, err := cmd.LookupErr(path...)
	return err == nil
}
