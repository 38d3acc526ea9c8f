package util

import (
	"testing"
)

func TestNil(t *testing.T) {
	_, err := NewOrderedMap(nil, nil)
	if err != nil {
		t.Error(err)
		return
	}
	_, err = NewOrderedMap(nil, map[string]interface{}{})
	if err != nil {
		t.Error(err)
		return
	}
	_, err = NewOrderedMap([]string{}, nil)
	if err != nil {
		t.Error(err)
		return
	}
}

func TestMismatchedLength(t *testing.T) {
	_, err := NewOrderedMap([]string{"a", "b"},
		map[string]interface{}{"a": nil})
	if err != ErrorKeysDontMatchValues {
		t.Error("Should have returned an error")
		return
	}
}

func TestMismatchedKeys(t *testing.T) {
	_, err := NewOrderedMap([]string{"a", "b"},
		map[string]interface{}{"a": nil, "c": nil})
	if err != ErrorKeysDontMatchValues {
		t.Error("Should have returned an error")
		return
	}
}

func TestOrder(t *testing.T) {
	om, err := NewOrderedMap([]string{"b", "a"},
		map[string]interface{}{"a": 1, "b": 2})
	if err != nil {
		t.Error(err)
		return
	}
	keys := om.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Error("keys out of order", keys)
		return
	}
	om.Add("c", 3)
	keys = om.Keys()
	if len(keys) != 3 || keys[2] != "c" {
		t.Error("Add() did not append", keys)
		return
	}
	v, has := om.Get("a")
	if !has || v.(int) != 1 {
		t.Error("Get() failed")
		return
	}
}

func TestReplace(t *testing.T) {
	om, err := NewOrderedMap(nil, nil)
	if err != nil {
		t.Error(err)
		return
	}
	om.Add("a", 1)
	om.Add("a", 2)
	if om.Len() != 1 {
		t.Error("replacing a value should not duplicate the key")
		return
	}
	v, _ := om.Get("a")
	if v.(int) != 2 {
		t.Error("replacing a value failed")
		return
	}
}
