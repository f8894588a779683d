// remind: 2000/01/01 generated code
