package amqptx

import (
	"context"
	"errors"
	"testing"

	"github.com/smarty/assertions/should"
	"github.com/smarty/gunit"

	"github.com/smarty/transactional"
)

func TestResourceFixture(t *testing.T) {
	gunit.Run(new(ResourceFixture), t)
}

type ResourceFixture struct {
	*gunit.Fixture

	subject transactional.Resource

	channelError  error
	txError       error
	commitError   error
	rollbackError error
	opened        []*fakeChannel
}

func (this *ResourceFixture) Setup() {
	this.subject = newResource(configuration{Connection: this, Logger: &nop{}})
}

func (this *ResourceFixture) TestBeginOpensChannelInTxMode() {
	transaction, err := this.subject.Begin(context.Background(), nil)

	this.So(err, should.BeNil)
	this.So(this.opened, should.HaveLength, 1)
	this.So(transaction, should.Equal, this.opened[0])
	this.So(this.opened[0].txCalls, should.Equal, 1)
	this.So(this.opened[0].closed, should.BeFalse)
}
func (this *ResourceFixture) TestChannelFailurePropagates() {
	this.channelError = errors.New("no channel")

	transaction, err := this.subject.Begin(context.Background(), nil)

	this.So(transaction, should.BeNil)
	this.So(err, should.Equal, this.channelError)
}
func (this *ResourceFixture) TestTxFailureClosesTheChannel() {
	this.txError = errors.New("tx unsupported")

	transaction, err := this.subject.Begin(context.Background(), nil)

	this.So(transaction, should.BeNil)
	this.So(err, should.Equal, this.txError)
	this.So(this.opened[0].closed, should.BeTrue)
}
func (this *ResourceFixture) TestCommitEndsAndClosesTheChannel() {
	transaction, _ := this.subject.Begin(context.Background(), nil)

	err := this.subject.Commit(context.Background(), transaction)

	this.So(err, should.BeNil)
	this.So(this.opened[0].commitCalls, should.Equal, 1)
	this.So(this.opened[0].closed, should.BeTrue)
}
func (this *ResourceFixture) TestCommitFailureStillClosesTheChannel() {
	this.commitError = errors.New("commit failed")
	transaction, _ := this.subject.Begin(context.Background(), nil)

	err := this.subject.Commit(context.Background(), transaction)

	this.So(err, should.Equal, this.commitError)
	this.So(this.opened[0].closed, should.BeTrue)
}
func (this *ResourceFixture) TestRollbackEndsAndClosesTheChannel() {
	transaction, _ := this.subject.Begin(context.Background(), nil)

	err := this.subject.Rollback(context.Background(), transaction)

	this.So(err, should.BeNil)
	this.So(this.opened[0].rollbackCalls, should.Equal, 1)
	this.So(this.opened[0].closed, should.BeTrue)
}
func (this *ResourceFixture) TestEachBeginOpensADistinctChannel() {
	first, _ := this.subject.Begin(context.Background(), nil)
	second, _ := this.subject.Begin(context.Background(), nil)

	this.So(first, should.NotEqual, second)
	this.So(this.opened, should.HaveLength, 2)
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

func (this *ResourceFixture) Channel() (channelTx, error) {
	if this.channelError != nil {
		return nil, this.channelError
	}
	channel := &fakeChannel{fixture: this}
	this.opened = append(this.opened, channel)
	return channel, nil
}

type fakeChannel struct {
	fixture       *ResourceFixture
	txCalls       int
	commitCalls   int
	rollbackCalls int
	closed        bool
}

func (this *fakeChannel) Tx() error {
	if this.fixture.txError != nil {
		return this.fixture.txError
	}
	this.txCalls++
	return nil
}
func (this *fakeChannel) TxCommit() error {
	if this.fixture.commitError != nil {
		return this.fixture.commitError
	}
	this.commitCalls++
	return nil
}
func (this *fakeChannel) TxRollback() error {
	if this.fixture.rollbackError != nil {
		return this.fixture.rollbackError
	}
	this.rollbackCalls++
	return nil
}
func (this *fakeChannel) Close() error {
	this.closed = true
	return nil
}
